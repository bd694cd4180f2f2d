// Copyright The Starling Authors
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/starling-verify/starling/pkg/starerr"
	"golang.org/x/term"
)

var (
	headingStyle = color.New(color.FgCyan, color.Bold)
	errorStyle   = color.New(color.FgRed, color.Bold)
)

const defaultTermWidth = 80

// terminalWidth reports the width to wrap rendered terms to, falling back
// to defaultTermWidth when stdout isn't a terminal (e.g. piped output).
func terminalWidth() uint {
	fd := int(os.Stdout.Fd())

	if !term.IsTerminal(fd) {
		return defaultTermWidth
	}

	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return defaultTermWidth
	}

	return uint(w)
}

// wrap folds s's S-expression rendering into lines no wider than width,
// breaking only at spaces so parenthesised groups never split mid-token.
func wrap(s string, width uint) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return s
	}

	var b strings.Builder

	lineLen := 0

	for i, w := range words {
		if i > 0 {
			if uint(lineLen+1+len(w)) > width {
				b.WriteByte('\n')
				lineLen = 0
			} else {
				b.WriteByte(' ')
				lineLen++
			}
		}

		b.WriteString(w)
		lineLen += len(w)
	}

	return b.String()
}

// renderHeading prints a bold, colored section heading followed by a
// width-wrapped S-expression body (§1's "pretty-printing is an opaque
// capability the core may call").
func renderHeading(heading, body string) {
	headingStyle.Println(heading)
	println_(wrap(body, terminalWidth()))
}

func println_(s string) {
	os.Stdout.WriteString(s)
	os.Stdout.WriteString("\n")
}

// renderError prints a starerr.Error in red, the same severity-styling
// role gnoverse-tlin's print.go gives its errorStyle.
func renderError(err error) {
	if serr, ok := err.(*starerr.Error); ok {
		errorStyle.Println(serr.Error())
		return
	}

	errorStyle.Println(err.Error())
}
