package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		number string
		brand  string
	}{
		{"4539780000000000", BrandVisa},
		{"4222222222222", BrandVisa},
		{"4539780000000000000", BrandVisa},
		{"5100000000000000", BrandMasterCard},
		{"5555555555554444", BrandMasterCard},
		{"2221000000000000", BrandMasterCard},
		{"2720999999999999", BrandMasterCard},
		{"370000000000000", BrandAmex},
		{"341111111111111", BrandAmex},
		{"6363680000000000", BrandElo},
		{"5066991111111118", BrandElo},
		{"30000000000000", BrandDiners},
		{"36000000000000", BrandDiners},
		{"3900000000000000", BrandDiners},
		{"6011000000000000", BrandDiscover},
		{"6011000000000000000", BrandDiscover},
		{"6500000000000000", BrandDiscover},
		{"6062820000000000", BrandHipercard},
		{"3528000000000000", BrandJCB},
		{"1800000000000000", BrandJCB},
		{"5018000000000000000", BrandAura},
		{"620000000000000000", BrandUnionPay},
		{"6759649826438453", BrandMaestro},
		{"501800000000", BrandMaestro},
	}
	for _, c := range cases {
		brand, ok := Classify(c.number)
		assert.True(t, ok, c.number)
		assert.Equal(t, c.brand, brand, c.number)
	}
}

func TestClassifyNoMatch(t *testing.T) {
	for _, number := range []string{
		"",
		"1234567890123456",
		"9999999999999999",
		"2721000000000000",
		"37000000000000",
		"45397800000000",
		"4539-7800-0000-0000",
	} {
		brand, ok := Classify(number)
		assert.False(t, ok, number)
		assert.Empty(t, brand, number)
	}
}

func TestClassifyPrecedence(t *testing.T) {
	cases := []struct {
		name   string
		number string
		brand  string
	}{
		// 504175 is both an Elo BIN and an Aura/Maestro "50" prefix
		{"elo over aura", "5041750000000000", BrandElo},
		{"elo over maestro", "50417500000000", BrandElo},
		{"discover over unionpay", "6221260000000000", BrandDiscover},
		{"discover range end", "6229250000000000", BrandDiscover},
		{"unionpay outside discover range", "6229260000000000", BrandUnionPay},
		{"visa over elo", "4011780000000000", BrandVisa},
		{"elo where visa length misses", "40117800000000", BrandElo},
		{"diners over hipercard", "3841000000000000", BrandDiners},
		{"maestro shadows cabal", "5896570000000000", BrandMaestro},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			brand, ok := Classify(c.number)
			require.True(t, ok)
			assert.Equal(t, c.brand, brand)
		})
	}
}

func TestRulesOrder(t *testing.T) {
	want := []string{
		BrandVisa, BrandMasterCard, BrandAmex, BrandElo, BrandDiners, BrandDiscover,
		BrandHipercard, BrandJCB, BrandAura, BrandUnionPay, BrandMaestro, BrandCabal,
	}
	got := Rules()
	require.Len(t, got, len(want))
	for i, r := range got {
		assert.Equal(t, want[i], r.Name)
	}

	got[0] = Rule{Name: "changed"}
	assert.Equal(t, BrandVisa, Rules()[0].Name)
}

func TestCabalRuleMatchesOnItsOwn(t *testing.T) {
	var cabal Rule
	for _, r := range Rules() {
		if r.Name == BrandCabal {
			cabal = r
		}
	}
	assert.True(t, cabal.Match("5896570000000000"))
	assert.True(t, cabal.Match("6042000000000000"))
	assert.False(t, cabal.Match("6044000000000000"))
	assert.False(t, cabal.Match("589657000000000"))
}

func TestPatternMatch(t *testing.T) {
	p := Pattern{Prefixes: []Span{{From: "2221", To: "2720"}}, Lengths: []int{16}}
	assert.True(t, p.Match("2221000000000000"))
	assert.True(t, p.Match("2500000000000000"))
	assert.False(t, p.Match("2220999999999999"))
	assert.False(t, p.Match("27210000000000000"))
	assert.False(t, p.Match("222"))
}
