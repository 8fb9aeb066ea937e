package domain_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/rios0rios0/depstatus/domain"
)

// Alpha-only generators cannot produce a '#', so neither the start marker
// nor the end marker can occur by accident in generated documents or bodies.

func genDocument() gopter.Gen {
	return gen.AlphaString()
}

func genBody() gopter.Gen {
	return gen.AlphaString()
}

func TestSpliceProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("absent marker always appends after a blank line", prop.ForAll(
		func(doc, body string) bool {
			replacement := startMarker + "\n" + body
			result := domain.Splice(doc, startMarker, endMarker, replacement)
			return result == doc+"\n\n"+replacement
		},
		genDocument(),
		genBody(),
	))

	properties.Property("replace path is idempotent when the body has no heading token", prop.ForAll(
		func(pre, post, body string) bool {
			doc := pre + "\n" + startMarker + " (old)\nstale\n\n## Other\n" + post
			replacement := startMarker + "\n" + body

			once := domain.Splice(doc, startMarker, endMarker, replacement)
			twice := domain.Splice(once, startMarker, endMarker, replacement)
			return once == twice
		},
		genDocument(),
		genDocument(),
		genBody(),
	))

	properties.Property("append path stabilizes after the second application", prop.ForAll(
		func(doc, body string) bool {
			replacement := startMarker + "\n" + body

			first := domain.Splice(doc, startMarker, endMarker, replacement)
			second := domain.Splice(first, startMarker, endMarker, replacement)
			third := domain.Splice(second, startMarker, endMarker, replacement)
			return second == third
		},
		genDocument(),
		genBody(),
	))

	properties.Property("content before the section is never touched", prop.ForAll(
		func(pre, post, body string) bool {
			doc := pre + "\n" + startMarker + "\nstale\n\n## Other\n" + post
			replacement := startMarker + "\n" + body

			result := domain.Splice(doc, startMarker, endMarker, replacement)
			return result[:len(pre)+1] == pre+"\n"
		},
		genDocument(),
		genDocument(),
		genBody(),
	))

	properties.TestingRun(t)
}
