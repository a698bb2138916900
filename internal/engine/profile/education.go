package profile

import (
	"regexp"
	"strconv"
	"time"
)

const recentDegreeYears = 5

var yearRe = regexp.MustCompile(`\b(19|20)\d{2}\b`)

func parseEducation(raw map[string]any, now time.Time) Education {
	var edu Education
	for _, e := range objects(raw, "education", "educations", "degrees") {
		d := Degree{
			Degree:      str(e, "degree", "title", "qualification"),
			Institution: str(e, "institution", "school", "university", "college"),
			Field:       str(e, "field", "fieldOfStudy", "major", "area"),
			Year:        degreeYear(e),
		}
		if d.Degree == "" && d.Institution == "" {
			continue
		}
		edu.Degrees = append(edu.Degrees, d)
	}
	edu.Certifications = uniqueFold(nil, strList(raw, "certifications", "certificates", "certs")...)

	cutoff := now.Year() - recentDegreeYears
	for _, d := range edu.Degrees {
		if d.Year >= cutoff && d.Year > 0 {
			edu.ContinuousLearning = true
		}
	}
	if len(edu.Certifications) > 0 {
		edu.ContinuousLearning = true
	}
	return edu
}

// degreeYear takes the last four-digit year found in the usual date fields.
func degreeYear(e map[string]any) int {
	if n, ok := number(e, "year", "graduationYear", "graduation_year"); ok && n >= 1900 && n < 2200 {
		return int(n)
	}
	for _, k := range []string{"endDate", "end_date", "graduation", "dates", "year", "period"} {
		found := yearRe.FindAllString(str(e, k), -1)
		if len(found) == 0 {
			continue
		}
		if y, err := strconv.Atoi(found[len(found)-1]); err == nil {
			return y
		}
	}
	return 0
}
