/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package expression

import "strings"

// CompileProjection converts a list of requested attribute names into a
// projection expression. It reuses placeholders already minted for the
// key-condition or filter expressions and mints new ones only for names not
// yet in the shared table. An empty list compiles to the empty string.
func CompileProjection(attrs []string, names *NameTable) string {
	if len(attrs) == 0 {
		return ""
	}
	tokens := make([]string, 0, len(attrs))
	for _, attr := range attrs {
		tokens = append(tokens, names.Token(attr))
	}
	return strings.Join(tokens, ", ")
}
