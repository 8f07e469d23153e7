package weather

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tokenbag/errors"
)

func TestGenerator_Generate(t *testing.T) {
	t.Run("should pick an option from the matching table", func(t *testing.T) {
		req := require.New(t)
		gen := NewGenerator(1)

		report, err := gen.Generate("winter", "mountain")

		req.NoError(err)
		req.Equal("Winter", report.Season)
		req.Equal("Mountain", report.Zone)
		req.Contains(tables["winter"]["mountain"], report.Weather)
	})

	t.Run("should ignore case and surrounding spaces", func(t *testing.T) {
		req := require.New(t)
		gen := NewGenerator(1)

		report, err := gen.Generate(" Summer ", "SEA")

		req.NoError(err)
		req.Contains(tables["summer"]["sea"], report.Weather)
	})

	t.Run("should reject an unknown season or zone", func(t *testing.T) {
		req := require.New(t)
		gen := NewGenerator(1)

		_, err := gen.Generate("monsoon", "plains")
		req.ErrorIs(err, errors.ErrUnknownForecast)

		_, err = gen.Generate("spring", "swamp")
		req.ErrorIs(err, errors.ErrUnknownForecast)
	})
}
