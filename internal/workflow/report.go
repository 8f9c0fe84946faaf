package workflow

import (
	"errors"
	"fmt"
	"io"

	"github.com/sbilibin2017/gw-currency-convert/internal/models"
)

// Report writes err for a human: API errors as their YAML report, anything else as is.
func Report(w io.Writer, err error) {
	if err == nil {
		return
	}

	var apiErr *models.APIError
	if errors.As(err, &apiErr) {
		fmt.Fprint(w, apiErr.ToYAML())
		return
	}
	fmt.Fprintln(w, err)
}
