package card

// Brand names as reported by Classify.
const (
	BrandVisa       = "Visa"
	BrandMasterCard = "MasterCard"
	BrandAmex       = "Amex"
	BrandElo        = "Elo"
	BrandDiners     = "Diners Club"
	BrandDiscover   = "Discover"
	BrandHipercard  = "Hipercard"
	BrandJCB        = "JCB"
	BrandAura       = "Aura"
	BrandUnionPay   = "UnionPay"
	BrandMaestro    = "Maestro"
	BrandCabal      = "Cabal"
)

// Span is an inclusive range of digit prefixes. From and To have the same width.
type Span struct {
	From string
	To   string
}

func (s Span) contains(number string) bool {
	n := len(s.From)
	if len(number) < n {
		return false
	}
	p := number[:n]
	return p >= s.From && p <= s.To
}

// Pattern matches a number whose leading digits fall in one of Prefixes and
// whose total length is one of Lengths.
type Pattern struct {
	Prefixes []Span
	Lengths  []int
}

// Match is anchored at both ends: the whole number has to fit the pattern.
func (p Pattern) Match(number string) bool {
	if !p.lengthOK(len(number)) {
		return false
	}
	for _, s := range p.Prefixes {
		if s.contains(number) {
			return true
		}
	}
	return false
}

func (p Pattern) lengthOK(n int) bool {
	for _, l := range p.Lengths {
		if l == n {
			return true
		}
	}
	return false
}

// Rule binds a brand name to the patterns that identify it.
type Rule struct {
	Name     string
	Patterns []Pattern
}

func (r Rule) Match(number string) bool {
	if !IsDigits(number) {
		return false
	}
	for _, p := range r.Patterns {
		if p.Match(number) {
			return true
		}
	}
	return false
}

func one(prefix string) Span { return Span{From: prefix, To: prefix} }

func span(from, to string) Span { return Span{From: from, To: to} }

func lengths(from, to int) []int {
	result := make([]int, 0, to-from+1)
	for l := from; l <= to; l++ {
		result = append(result, l)
	}
	return result
}

// eloBins are the six-digit BINs published for Elo.
var eloBins = []Span{
	one("401178"), one("401179"), one("431274"), one("438935"),
	one("451416"), one("457393"), one("457631"), one("457632"),
	one("504175"), one("506699"),
	span("506700", "506778"),
	span("509000", "509999"),
	one("627780"), one("636297"),
	span("636368", "636369"),
	span("650031", "650033"),
	span("650035", "650051"),
	span("650405", "650439"),
	span("650485", "650539"),
	span("650541", "650598"),
	span("650700", "650718"),
	span("650720", "650727"),
	span("650901", "650920"),
	span("651652", "651679"),
	span("655000", "655059"),
}

// rules is evaluated top to bottom and the first hit wins. Narrow BIN lists
// sit above the broad prefix they overlap with: Elo above Aura and Maestro,
// Discover's 622 range above UnionPay.
var rules = []Rule{
	{BrandVisa, []Pattern{
		{[]Span{one("4")}, []int{13, 16, 19}},
	}},
	{BrandMasterCard, []Pattern{
		{[]Span{span("51", "55")}, []int{16}},
		{[]Span{span("2221", "2720")}, []int{16}},
	}},
	{BrandAmex, []Pattern{
		{[]Span{one("34"), one("37")}, []int{15}},
	}},
	{BrandElo, []Pattern{
		{eloBins, lengths(14, 18)},
	}},
	{BrandDiners, []Pattern{
		{[]Span{span("300", "305"), one("36"), span("38", "39")}, lengths(14, 16)},
	}},
	{BrandDiscover, []Pattern{
		{[]Span{one("6011"), span("644", "649"), one("65"), span("622126", "622925")}, []int{16, 19}},
	}},
	{BrandHipercard, []Pattern{
		{[]Span{one("384100"), one("384140"), one("384160"), one("606282")}, []int{16, 19}},
	}},
	{BrandJCB, []Pattern{
		{[]Span{one("2131"), one("1800"), span("3528", "3589")}, lengths(16, 19)},
	}},
	{BrandAura, []Pattern{
		{[]Span{one("50")}, lengths(16, 19)},
	}},
	{BrandUnionPay, []Pattern{
		{[]Span{one("62")}, lengths(16, 19)},
	}},
	{BrandMaestro, []Pattern{
		{[]Span{one("50"), span("56", "58"), one("6")}, lengths(12, 19)},
	}},
	// Every Cabal prefix is also covered by Maestro above, so in practice this
	// rule never wins. The order is kept as published.
	{BrandCabal, []Pattern{
		{[]Span{one("589657"), span("600", "603"), span("6042", "6043")}, lengths(16, 19)},
	}},
}

// Rules returns the brand table in evaluation order. The slice is a copy.
func Rules() []Rule {
	result := make([]Rule, len(rules))
	copy(result, rules)
	return result
}

// Classify returns the first brand whose pattern matches the normalized
// number. No match is a normal outcome and yields ("", false).
func Classify(normalized string) (string, bool) {
	for _, r := range rules {
		if r.Match(normalized) {
			return r.Name, true
		}
	}
	return "", false
}
