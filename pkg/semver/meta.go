package semver

// parseOptionalMeta parses an optional marker-prefixed, dot-separated list
// of identifiers. If s does not start with marker it returns no identifiers
// and consumes nothing. The returned length includes the marker and every
// separator.
func parseOptionalMeta(s []byte, marker lit, errEmpty error) ([]Identifier, int, error) {
	i, ok := marker.recognize(s)
	if !ok {
		return nil, 0, nil
	}
	var ids []Identifier
	for {
		token, n, ok := alphanumericIdentifier(s[i:])
		if !ok {
			return nil, i, errEmpty
		}
		ids = append(ids, classify(token))
		i += n

		n, ok = dot.recognize(s[i:])
		if !ok {
			return ids, i, nil
		}
		i += n
	}
}
