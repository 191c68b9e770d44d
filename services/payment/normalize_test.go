package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeReceiverName(t *testing.T) {
	t.Run("Strips Honorific With Period", func(t *testing.T) {
		assert.Equal(t, "JANEOBRIEN", NormalizeReceiverName("Dr. Jane O'Brien"))
		assert.Equal(t, NormalizeReceiverName("JANE OBRIEN"), NormalizeReceiverName("Dr. Jane O'Brien"))
	})

	t.Run("Strips Honorific Without Period", func(t *testing.T) {
		assert.Equal(t, "SMITH", NormalizeReceiverName("Mr Smith"))
		assert.Equal(t, NormalizeReceiverName("SMITH"), NormalizeReceiverName("Mr Smith"))
	})

	t.Run("Handles Mrs And Ms", func(t *testing.T) {
		assert.Equal(t, "PLOYPHANSAELIM", NormalizeReceiverName("Mrs. Ployphan Saelim"))
		assert.Equal(t, "PLOYPHANSAELIM", NormalizeReceiverName("ms Ployphan-Saelim"))
	})

	t.Run("Keeps Names That Only Resemble Honorifics", func(t *testing.T) {
		assert.Equal(t, "DREWBARRY", NormalizeReceiverName("Drew Barry"))
		assert.Equal(t, "MISTYDAWN", NormalizeReceiverName("Misty Dawn"))
	})

	t.Run("Drops Non Alphanumeric Characters", func(t *testing.T) {
		assert.Equal(t, "ACMECLINICCOLTD", NormalizeReceiverName("  ACME Clinic Co., Ltd.  "))
	})

	t.Run("Is Idempotent", func(t *testing.T) {
		inputs := []string{
			"Dr. Jane O'Brien",
			"Mr Smith",
			"Mrs. Ployphan Saelim",
			"ACME Clinic Co., Ltd.",
			"",
			"   ",
			"dr",
		}
		for _, in := range inputs {
			once := NormalizeReceiverName(in)
			assert.Equal(t, once, NormalizeReceiverName(once), "normalize should be idempotent for %q", in)
		}
	})
}
