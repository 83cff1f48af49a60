package catalog

import "strings"

// Degree-code tables. Codes are compared upper-cased.
var (
	undergraduateCodes = codeSet(
		"B.Arch", "B.Com", "B.Des", "B.E", "B.Nursing", "B.Pharm", "B.Plan", "B.Sc",
		"B.Voc", "BA", "BAMS", "BBA", "BBM", "BCA", "BDS", "BFA", "BHA", "BHM",
		"BMIT", "BMLT", "BMS", "BOT", "BPT", "BSW", "BTTM", "BVA", "BYNS", "MBBS",
		"B.Com LLB", "BA LLB", "BBA LLB", "BMS LLB (Honours)",
	)

	postgraduateCodes = codeSet(
		"LL.B", "M.Arch", "M.Com", "M.Pharm", "M.Tech", "MA", "MBA", "MCA", "Mca2",
		"Msc", "P.B.B.Sc", "B.Ed",
	)

	// codeAliases rewrites a raw code to its conventional label.
	codeAliases = map[string]string{
		"Mca2": "MCA",
	}

	// placeholderNames marks rows that are labels rather than programs.
	placeholderNames = []string{"degree"}
)

const (
	postgraduatePrefix = "M"
	undergraduateMCode = "MBBS"
)

// DegreeAlias expands a free-text degree preference to concrete degree codes.
type DegreeAlias struct {
	Key      string
	Variants []string
}

// DegreeAliases is matched in order; the first key contained in the
// preference wins.
var DegreeAliases = []DegreeAlias{
	{Key: "engineering", Variants: []string{"b.tech", "b.e", "btech", "be", "m.tech"}},
	{Key: "technology", Variants: []string{"b.tech", "m.tech", "btech", "mtech"}},
	{Key: "medicine", Variants: []string{"mbbs", "bams", "bds"}},
	{Key: "medical", Variants: []string{"mbbs", "bams", "bds", "bmlt"}},
	{Key: "doctor", Variants: []string{"mbbs", "bams", "bds"}},
	{Key: "commerce", Variants: []string{"b.com", "bcom", "m.com"}},
	{Key: "business", Variants: []string{"bba", "bbm", "bms", "mba"}},
	{Key: "management", Variants: []string{"bba", "bbm", "bms", "mba", "bha", "bhm"}},
	{Key: "computer application", Variants: []string{"bca", "mca"}},
	{Key: "science", Variants: []string{"b.sc", "bsc", "msc", "m.sc"}},
	{Key: "arts", Variants: []string{"ba", "ma", "bfa", "bva"}},
	{Key: "humanities", Variants: []string{"ba", "ma"}},
	{Key: "law", Variants: []string{"ll.b", "llb", "ba llb", "bba llb", "b.com llb", "bms llb (honours)"}},
	{Key: "design", Variants: []string{"b.des", "m.des"}},
	{Key: "architecture", Variants: []string{"b.arch", "m.arch", "b.plan"}},
	{Key: "pharmacy", Variants: []string{"b.pharm", "m.pharm"}},
	{Key: "nursing", Variants: []string{"b.nursing", "p.b.b.sc"}},
	{Key: "teaching", Variants: []string{"b.ed"}},
	{Key: "education", Variants: []string{"b.ed"}},
	{Key: "social work", Variants: []string{"bsw"}},
	{Key: "physiotherapy", Variants: []string{"bpt"}},
	{Key: "hotel", Variants: []string{"bhm"}},
	{Key: "tourism", Variants: []string{"bttm"}},
}

func codeSet(codes ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		set[strings.ToUpper(c)] = struct{}{}
	}
	return set
}

// NormalizeCode applies the known code aliases.
func NormalizeCode(code string) string {
	if alias, ok := codeAliases[code]; ok {
		return alias
	}
	return code
}

// IsPostgraduate decides the partition of a normalized degree code.
func IsPostgraduate(code string) bool {
	upper := strings.ToUpper(strings.TrimSpace(code))
	if _, ok := postgraduateCodes[upper]; ok {
		return true
	}
	if strings.HasPrefix(upper, postgraduatePrefix) && upper != undergraduateMCode {
		return true
	}
	if _, ok := undergraduateCodes[upper]; ok {
		return false
	}
	// Unknown codes land in UG; the M-prefix case is already handled above.
	return false
}

// IsKnownCode reports whether code appears in either explicit table.
func IsKnownCode(code string) bool {
	upper := strings.ToUpper(strings.TrimSpace(code))
	_, ug := undergraduateCodes[upper]
	_, pg := postgraduateCodes[upper]
	return ug || pg
}

func isPlaceholder(name string) bool {
	lower := strings.ToLower(strings.TrimSpace(name))
	for _, p := range placeholderNames {
		if lower == p {
			return true
		}
	}
	return false
}
