package base

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

// mismatch builds the failure error of one check assertion, dumping both
// sides for diagnosis
func mismatch(what string, got, want interface{}) error {
	return errors.Errorf("%s mismatch: got %s want %s", what, spew.Sdump(got), spew.Sdump(want))
}
