package emojicode

import (
	"errors"
	"strconv"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexToDecimal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"zero", "0", "0"},
		{"single", "1f600", "128512"},
		{"skin tone", "1f600-1f3fb", "128512-127995"},
		{"uppercase", "1F600-1F3FB", "128512-127995"},
		{"leading zeros", "0000a9", "169"},
		{"whitespace", " 1f44b - 1f3fd ", "128075-127997"},
		{"0x prefix", "0x1f600", "128512"},
		{"U+ prefix", "U+1F600-u+1F3FB", "128512-127995"},
		{"zwj family", "1f468-200d-1f469-200d-1f467", "128104-8205-128105-8205-128103"},
		{"max uint32", "ffffffff", "4294967295"},
		{"above max rune", "110000", "1114112"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HexToDecimal(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecimalToHex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"zero", "0", "0"},
		{"single", "128512", "1f600"},
		{"skin tone", "128512-127995", "1f600-1f3fb"},
		{"leading zeros", "000169", "a9"},
		{"whitespace", "\t128075 -127997\n", "1f44b-1f3fd"},
		{"keycap", "35-65039-8419", "23-fe0f-20e3"},
		{"max uint32", "4294967295", "ffffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecimalToHex(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInvalidToken(t *testing.T) {
	tests := []struct {
		name      string
		convert   func(string) (string, error)
		input     string
		wantToken string
		wantIndex int
		wantBase  Base
		wantCause error
	}{
		{"hex garbage", HexToDecimal, "zz", "zz", 0, Hex, strconv.ErrSyntax},
		{"hex trailing garbage", HexToDecimal, "1f600-1fzz", "1fzz", 1, Hex, strconv.ErrSyntax},
		{"hex sign", HexToDecimal, "+1f600", "+1f600", 0, Hex, strconv.ErrSyntax},
		{"hex bare prefix", HexToDecimal, "0x", "0x", 0, Hex, strconv.ErrSyntax},
		{"hex double hyphen", HexToDecimal, "1f600--1f3fb", "", 1, Hex, ErrEmptyToken},
		{"hex trailing hyphen", HexToDecimal, "1f600-", "", 1, Hex, ErrEmptyToken},
		{"hex whitespace only", HexToDecimal, "   ", "   ", 0, Hex, ErrEmptyToken},
		{"hex overflow", HexToDecimal, "100000000", "100000000", 0, Hex, strconv.ErrRange},
		{"decimal hex digits", DecimalToHex, "128512-1f3fb", "1f3fb", 1, Decimal, strconv.ErrSyntax},
		{"decimal 0x prefix", DecimalToHex, "0x10", "0x10", 0, Decimal, strconv.ErrSyntax},
		{"decimal inner space", DecimalToHex, "128 512", "128 512", 0, Decimal, strconv.ErrSyntax},
		{"decimal leading hyphen", DecimalToHex, "-5", "", 0, Decimal, ErrEmptyToken},
		{"decimal overflow", DecimalToHex, "4294967296", "4294967296", 0, Decimal, strconv.ErrRange},
		{"decimal NaN", DecimalToHex, "NaN", "NaN", 0, Decimal, strconv.ErrSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.convert(tt.input)
			require.Error(t, err)
			assert.Empty(t, got, "no partial output on failure")

			var tokErr *InvalidTokenError
			require.ErrorAs(t, err, &tokErr)
			assert.Equal(t, tt.input, tokErr.Input)
			assert.Equal(t, tt.wantToken, tokErr.Token)
			assert.Equal(t, tt.wantIndex, tokErr.Index)
			assert.Equal(t, tt.wantBase, tokErr.Base)
			assert.ErrorIs(t, err, tt.wantCause)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestInvalidTokenError_Error(t *testing.T) {
	_, err := HexToDecimal("1f600-zz")
	require.Error(t, err)
	assert.Equal(t, `emojicode: invalid hex token "zz" at position 1: invalid syntax`, err.Error())

	_, err = DecimalToHex("1--2")
	require.Error(t, err)
	assert.Equal(t, `emojicode: invalid decimal token "" at position 1: empty token`, err.Error())

	_, err = DecimalToHex("99999999999")
	require.Error(t, err)
	assert.Equal(t, `emojicode: invalid decimal token "99999999999" at position 0: value out of range`, err.Error())

	custom := &InvalidTokenError{Token: "x", Base: Base(8), Err: errors.New("boom")}
	assert.Equal(t, `emojicode: invalid base(8) token "x" at position 0: boom`, custom.Error())
}

func TestBase_String(t *testing.T) {
	assert.Equal(t, "hex", Hex.String())
	assert.Equal(t, "decimal", Decimal.String())
	assert.Equal(t, "base(2)", Base(2).String())
}

func TestConvert(t *testing.T) {
	got, err := Convert("1f600", Hex, Base(2))
	require.NoError(t, err)
	assert.Equal(t, "11111011000000000", got)

	got, err = Convert("777-10", Base(8), Decimal)
	require.NoError(t, err)
	assert.Equal(t, "511-8", got)

	_, err = Convert("1f600", Base(1), Hex)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidToken)

	_, err = Convert("1f600", Hex, Base(37))
	assert.Error(t, err)
}

func TestParse(t *testing.T) {
	cp, err := ParseHex("1f600-1f3fb")
	require.NoError(t, err)
	assert.Equal(t, CodePoints{0x1F600, 0x1F3FB}, cp)

	cp, err = ParseDecimal("128512-127995")
	require.NoError(t, err)
	assert.Equal(t, CodePoints{0x1F600, 0x1F3FB}, cp)

	cp, err = ParseHex("")
	require.NoError(t, err)
	assert.Nil(t, cp)
}

func TestCodePoints_Format(t *testing.T) {
	cp := CodePoints{0, 0xA9, 0x1F600}
	assert.Equal(t, "0-a9-1f600", cp.Hex())
	assert.Equal(t, "0-169-128512", cp.Decimal())
	assert.Equal(t, cp.Hex(), cp.String())
	assert.Equal(t, "", CodePoints(nil).Hex())
	assert.Equal(t, "", CodePoints{}.Decimal())
	assert.Equal(t, 3, cp.Len())
}

func TestCodePoints_Equal(t *testing.T) {
	a := CodePoints{1, 2, 3}
	assert.True(t, a.Equal(CodePoints{1, 2, 3}))
	assert.False(t, a.Equal(CodePoints{1, 2}))
	assert.False(t, a.Equal(CodePoints{1, 2, 4}))
	assert.True(t, CodePoints(nil).Equal(CodePoints{}))
}

func TestFromString(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"empty", "", ""},
		{"grinning face", "\U0001F600", "1f600"},
		{"waving hand medium", "\U0001F44B\U0001F3FD", "1f44b-1f3fd"},
		{"red heart", "\u2764\ufe0f", "2764-fe0f"},
		{"flag US", "\U0001F1FA\U0001F1F8", "1f1fa-1f1f8"},
		{"invalid utf8", "\xff", "fffd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromString(tt.text).Hex())
		})
	}
}

func TestCodePoints_Text(t *testing.T) {
	cp, err := ParseHex("1f469-200d-1f4bb")
	require.NoError(t, err)

	text, err := cp.Text()
	require.NoError(t, err)
	assert.Equal(t, "\U0001F469\u200d\U0001F4BB", text)
	assert.Equal(t, cp, FromString(text))

	runes, err := cp.Runes()
	require.NoError(t, err)
	assert.Equal(t, cp, FromRunes(runes))

	text, err = CodePoints(nil).Text()
	require.NoError(t, err)
	assert.Empty(t, text)
	assert.Nil(t, FromRunes(nil))
}

func TestCodePoints_TextRejectsNonScalar(t *testing.T) {
	for _, cp := range []CodePoints{
		{0x1F600, 0xD800},
		{0x110000},
		{0xFFFFFFFF},
	} {
		_, err := cp.Text()
		assert.ErrorIs(t, err, ErrNotScalarValue, "CodePoints%v.Text()", []uint32(cp))
	}
}

func TestRoundTripHex(t *testing.T) {
	f := func(values []uint32) bool {
		if len(values) == 0 {
			return true
		}
		s := CodePoints(values)
		dec, err := HexToDecimal(s.Hex())
		if err != nil || dec != s.Decimal() {
			return false
		}
		hex, err := DecimalToHex(dec)
		return err == nil && hex == s.Hex()
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestRoundTripDecimal(t *testing.T) {
	f := func(values []uint32) bool {
		if len(values) == 0 {
			return true
		}
		s := CodePoints(values)
		hex, err := DecimalToHex(s.Decimal())
		if err != nil || hex != s.Hex() {
			return false
		}
		dec, err := HexToDecimal(hex)
		return err == nil && dec == s.Decimal()
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestConcurrentConversion(t *testing.T) {
	t.Parallel()
	for i := 0; i < 16; i++ {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			t.Parallel()
			for j := 0; j < 100; j++ {
				got, err := HexToDecimal("1f600-1f3fb")
				if err != nil || got != "128512-127995" {
					t.Errorf("HexToDecimal() = %q, %v", got, err)
					return
				}
			}
		})
	}
}

func BenchmarkHexToDecimal(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = HexToDecimal("1f468-200d-1f469-200d-1f467-200d-1f466")
	}
}

func BenchmarkDecimalToHex(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = DecimalToHex("128104-8205-128105-8205-128103-8205-128102")
	}
}
