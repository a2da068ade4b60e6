package quill

// wireTable is a bidirectional mapping between an enum's variants and
// the tokens the markup uses for them. Tokens not present in the table
// parse to the fallback variant, mirroring the decoder's lenient policy
// for attribute values.
type wireTable[T comparable] struct {
	tokens   map[T]string
	variants map[string]T
	fallback T
}

func newWireTable[T comparable](fallback T, tokens map[T]string) wireTable[T] {
	variants := make(map[string]T, len(tokens))
	for variant, token := range tokens {
		variants[token] = variant
	}
	return wireTable[T]{
		tokens:   tokens,
		variants: variants,
		fallback: fallback,
	}
}

func (t wireTable[T]) token(variant T) string {
	return t.tokens[variant]
}

func (t wireTable[T]) parse(token string) T {
	if variant, ok := t.variants[token]; ok {
		return variant
	}
	return t.fallback
}
