package generator

// Kind names a generator variant. The wire representation is always
// kebab-case, matching the schema document's GeneratorKind enum.
type Kind string

const (
	KindInt                  Kind = "int"
	KindReal                 Kind = "real"
	KindBool                 Kind = "bool"
	KindDateTime             Kind = "date-time"
	KindDate                 Kind = "date"
	KindTime                 Kind = "time"
	KindAlwaysNull           Kind = "always-null"
	KindIncrementID          Kind = "increment-id"
	KindEvalInt              Kind = "eval-int"
	KindEvalReal             Kind = "eval-real"
	KindEvalBool             Kind = "eval-bool"
	KindFormat               Kind = "format"
	KindDuplicatePermutation Kind = "duplicate-permutation"
	KindCaseWhen             Kind = "case-when"
	KindRandomChild          Kind = "random-child"
	KindSelectInt            Kind = "select-int"
	KindSelectReal           Kind = "select-real"
	KindSelectString         Kind = "select-string"
	KindGetIntValueAt        Kind = "get-int-value-at"
	KindGetRealValueAt       Kind = "get-real-value-at"
	KindGetStringValueAt     Kind = "get-string-value-at"
	KindGetValueIndex        Kind = "get-value-index"
	KindDistNormal           Kind = "dist-normal"

	// KindFake and KindRegex extend the original 23-member enum with two
	// convenience kinds backed by go-faker and reggen respectively.
	KindFake  Kind = "fake"
	KindRegex Kind = "regex"
)
