package base64js_test

import (
	"crypto/rand"
	stdbase64 "encoding/base64"
	"fmt"
	"testing"

	"github.com/lampamazaza/base64js/pkg/base64"
	"github.com/stretchr/testify/require"
)

func Example() {
	encoded := base64.Encode("Plain Text")
	fmt.Println(encoded)
	fmt.Println(base64.Decode(encoded))
	// Output:
	// UGxhaW4gVGV4dA==
	// Plain Text
}

func TestMatchesStandardLibrary(t *testing.T) {
	for n := 0; n < 300; n++ {
		buff := make([]byte, n)
		_, err := rand.Read(buff)
		require.NoError(t, err)

		want := stdbase64.StdEncoding.EncodeToString(buff)

		got := base64.EncodeBytes(buff)
		require.Equal(t, want, got, "input %x", buff)

		require.Equal(t, buff, base64.DecodeBytes(want))

		strict, err := base64.DecodeBytesStrict(want)
		require.NoError(t, err)
		require.Equal(t, buff, strict)
	}
}

func TestStrictRejectsWhatStandardLibraryRejects(t *testing.T) {
	inputs := []string{
		"Zm9",
		"Zm9v Zm9v",
		"Zg=",
		"=Zg=",
		"Zg==Zg==",
		"Zm9v-_==",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, stdErr := stdbase64.StdEncoding.Strict().DecodeString(input)
			require.Error(t, stdErr)

			_, err := base64.DecodeStrict(input)
			require.ErrorIs(t, err, base64.ErrInvalidEncoding)
		})
	}
}
