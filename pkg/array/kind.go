package array

// Kind tags the element type held by an Array
type Kind uint8

const (
	Invalid  Kind = iota // Invalid is the kind of the zero Array.
	Int32                // Int32 holds 32-bit signed integers.
	Int64                // Int64 holds 64-bit signed integers.
	Uint64               // Uint64 holds 64-bit unsigned integers.
	Float32              // Float32 holds 32-bit floats.
	Float64              // Float64 holds 64-bit floats.
	Datetime             // Datetime holds int64 nanoseconds since the Unix epoch.
)

var kindNames = map[Kind]string{
	Invalid:  "invalid",
	Int32:    "int32",
	Int64:    "int64",
	Uint64:   "uint64",
	Float32:  "float32",
	Float64:  "float64",
	Datetime: "datetime64",
}

// String returns the kind name
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "invalid"
}

// ItemSize returns the element width in bytes
func (k Kind) ItemSize() int {
	switch k {
	case Int32, Float32:
		return 4
	case Int64, Uint64, Float64, Datetime:
		return 8
	default:
		return 0
	}
}

// IsInt64Like reports whether elements are 64-bit integer instants
func (k Kind) IsInt64Like() bool {
	return k == Int64 || k == Datetime
}
