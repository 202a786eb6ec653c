package horoscope

// Palette holds the color names a card can pick as "Today's Color".
var Palette = []string{
	"AliceBlue", "Aqua", "Aquamarine", "Azure", "Beige", "Bisque",
	"Blue", "BlueViolet", "BurlyWood", "CadetBlue", "Chartreuse", "Chocolate",
	"Coral", "Cornsilk", "Crimson", "Cyan", "DeepPink", "DimGray",
	"DimGrey", "DodgerBlue", "FireBrick", "FloralWhite", "ForestGreen", "Fuchsia",
	"GhostWhite", "Gold", "GoldenRod", "Gray", "Grey", "Green",
	"GreenYellow", "HoneyDew", "HotPink", "IndianRed", "Indigo", "Ivory",
	"Khaki", "Lavender", "LawnGreen", "Lime", "LimeGreen", "Linen",
	"Magenta", "Maroon", "MintCream", "MistyRose", "Moccasin", "NavajoWhite",
	"Navy", "OldLace", "Olive", "OliveDrab", "Orange", "OrangeRed",
	"Orchid", "PapayaWhip", "PeachPuff", "Peru", "Pink", "Plum",
	"PowderBlue", "Purple", "Red", "RosyBrown", "RoyalBlue", "Salmon",
	"SandyBrown", "SeaGreen", "SeaShell", "Silver", "SkyBlue", "SlateBlue",
	"SlateGray", "SlateGrey", "Snow", "SteelBlue", "Tan", "Teal",
	"Thistle", "Tomato", "Turquoise", "Violet", "Wheat", "White",
	"WhiteSmoke", "Yellow",
}
