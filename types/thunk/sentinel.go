package thunk

import (
	"github.com/shortlink-org/lazy/types/singleton"
)

// notEvaluated is not zero-sized: pointers to distinct zero-sized values may compare equal.
type notEvaluated struct {
	_ byte
}

func (*notEvaluated) String() string {
	return "NotEvaluated"
}

// NotEvaluated marks an empty memo slot in untyped views such as Thunk.Memo.
// It is never a computed result.
var NotEvaluated any = singleton.Of(func() *notEvaluated {
	return &notEvaluated{}
})

// IsNotEvaluated reports whether x is the NotEvaluated marker.
func IsNotEvaluated(x any) bool {
	return x == NotEvaluated
}
