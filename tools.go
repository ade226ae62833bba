//go:build tools

package karatsuba

import (
	_ "github.com/gordonklaus/ineffassign"
	_ "golang.org/x/tools/cmd/stringer"
)
