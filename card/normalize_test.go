package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"", ""},
		{"4539780000000000", "4539780000000000"},
		{"4539 7800 0000 0000", "4539780000000000"},
		{"3700-000000-00000", "370000000000000"},
		{" - 45 -39- ", "4539"},
		{"4539-7800-ABCD-0000", "45397800ABCD0000"},
		{"4539\t7800", "4539\t7800"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Normalize(c.raw), c.raw)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, raw := range []string{"", "4539 7800 0000 0000", "--  --", "a-b c", "3700-000000-00000"} {
		once := Normalize(raw)
		assert.Equal(t, once, Normalize(once), raw)
	}
}

func TestIsDigits(t *testing.T) {
	assert.True(t, IsDigits("0123456789"))
	assert.False(t, IsDigits(""))
	assert.False(t, IsDigits("12a4"))
	assert.False(t, IsDigits("١٢٣"))
}
