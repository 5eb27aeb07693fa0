// Package annotate fills in example values for spec cards from a real FITS
// image.
package annotate

import (
	"fmt"
	"os"

	"github.com/astrogo/fitsio"

	"github.com/obstools/headerdoc/spec"
)

// Missing is recorded as the example value for keywords the image's primary
// header does not carry.
const Missing = "MISSING"

// ExampleValues opens the FITS file at path, reads its primary HDU header,
// and sets each card's Example field to the stringified header value. Cards
// whose keyword is absent from the header get the Missing sentinel; absence
// is not an error.
func ExampleValues(path string, cards *spec.CardSet) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open FITS file: %w", err)
	}
	defer f.Close()

	fits, err := fitsio.Open(f)
	if err != nil {
		return fmt.Errorf("read FITS file %s: %w", path, err)
	}
	defer fits.Close()

	hdr := fits.HDU(0).Header()
	for _, c := range cards.Cards() {
		if card := hdr.Get(c.Header); card != nil {
			c.Example = fmt.Sprintf("%v", card.Value)
		} else {
			c.Example = Missing
		}
	}
	return nil
}
