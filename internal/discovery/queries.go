package discovery

import "fmt"

// BuildQueryVariants returns the ordered search strings tried for one
// (job title, location) pair, most selective first. The pipeline stops
// at the first variant that yields any candidates, so later entries only
// run when the targeted forms come up empty.
func BuildQueryVariants(jobTitle, location string) []string {
	phrase := jobTitle + " " + location
	return []string{
		fmt.Sprintf(`site:linkedin.com/in/ "%s"`, phrase),
		fmt.Sprintf(`site:linkedin.com/in/ %s`, phrase),
		fmt.Sprintf(`site:linkedin.com/in/ "%s" "%s"`, jobTitle, location),
		fmt.Sprintf(`linkedin.com/in %s`, phrase),
		fmt.Sprintf(`"%s" linkedin profile`, phrase),
		fmt.Sprintf(`%s in %s linkedin`, jobTitle, location),
	}
}
