// Package member classifies type members and defines the total order
// used to check and restore canonical member order.
package member

// Kind identifies the declaration shape of a member.
type Kind int

const (
	// KindOther is any declaration the classifier has no rank for
	// (operators, conversion operators, unrecognised nodes).
	KindOther Kind = iota
	// KindField is a field declaration (int a, b;).
	KindField
	// KindProperty is a property declaration.
	KindProperty
	// KindDelegate is a nested delegate declaration.
	KindDelegate
	// KindEvent is an event declaration with accessors.
	KindEvent
	// KindEventField is a field-like event declaration (event E e;).
	KindEventField
	// KindIndexer is an indexer declaration (this[...]).
	KindIndexer
	// KindConstructor is an instance or static constructor.
	KindConstructor
	// KindDestructor is a finalizer (~T()).
	KindDestructor
	// KindMethod is a method declaration.
	KindMethod
	// KindEnum is a nested enum.
	KindEnum
	// KindInterface is a nested interface.
	KindInterface
	// KindStruct is a nested struct.
	KindStruct
	// KindRecordStruct is a nested record struct.
	KindRecordStruct
	// KindRecord is a nested record (class).
	KindRecord
	// KindClass is a nested class.
	KindClass
)

var kindNames = [...]string{
	KindOther:        "other",
	KindField:        "field",
	KindProperty:     "property",
	KindDelegate:     "delegate",
	KindEvent:        "event",
	KindEventField:   "event field",
	KindIndexer:      "indexer",
	KindConstructor:  "constructor",
	KindDestructor:   "destructor",
	KindMethod:       "method",
	KindEnum:         "enum",
	KindInterface:    "interface",
	KindStruct:       "struct",
	KindRecordStruct: "record struct",
	KindRecord:       "record",
	KindClass:        "class",
}

// String returns a lower-case description of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// IsFieldLike reports whether members of this kind name themselves
// through declared variables rather than an own identifier.
func (k Kind) IsFieldLike() bool {
	return k == KindField || k == KindEventField
}

// categoryRanks maps each kind to its primary sort rank. Kinds without an
// entry rank last.
var categoryRanks = map[Kind]int{
	KindField:        0,
	KindProperty:     1,
	KindDelegate:     2,
	KindEvent:        3,
	KindEventField:   3,
	KindIndexer:      4,
	KindConstructor:  5,
	KindDestructor:   6,
	KindMethod:       7,
	KindEnum:         8,
	KindInterface:    9,
	KindStruct:       10,
	KindRecordStruct: 11,
	KindRecord:       12,
	KindClass:        13,
}

// RankUnknown is the rank given to anything the ordering tables do not
// recognise.
const RankUnknown = 99
