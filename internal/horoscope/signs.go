package horoscope

import "strings"

type Sign struct {
	Name       string // display name, e.g. "Scorpio"
	Slug       string // route segment and emblem file stem
	Birthdates string
}

// Signs lists the zodiac in calendar order.
var Signs = []Sign{
	{Name: "Aries", Slug: "aries", Birthdates: "Born March 21 - April 19"},
	{Name: "Taurus", Slug: "taurus", Birthdates: "Born April 20 - May 20"},
	{Name: "Gemini", Slug: "gemini", Birthdates: "Born May 21 - June 20"},
	{Name: "Cancer", Slug: "cancer", Birthdates: "Born June 21 - July 22"},
	{Name: "Leo", Slug: "leo", Birthdates: "Born July 23 - August 22"},
	{Name: "Virgo", Slug: "virgo", Birthdates: "Born August 23 - September 22"},
	{Name: "Libra", Slug: "libra", Birthdates: "Born September 23 - October 22"},
	{Name: "Scorpio", Slug: "scorpio", Birthdates: "Born October 23 - November 21"},
	{Name: "Sagittarius", Slug: "sagittarius", Birthdates: "Born November 22 - December 21"},
	{Name: "Capricorn", Slug: "capricorn", Birthdates: "Born December 22 - January 19"},
	{Name: "Aquarius", Slug: "aquarius", Birthdates: "Born January 20 - February 18"},
	{Name: "Pisces", Slug: "pisces", Birthdates: "Born February 19 - March 20"},
}

// LookupSign finds a sign by slug, case-insensitively.
func LookupSign(slug string) (Sign, bool) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	for _, s := range Signs {
		if s.Slug == slug {
			return s, true
		}
	}
	return Sign{}, false
}
