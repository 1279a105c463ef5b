package suppress

//checkstyle:suppress membername,javadoctype - legacy wire names
type legacy struct {
	first_name string
	last_name  string
}

// Partial suppresses a single field.
type Partial struct {
	//checkstyle:suppress membername
	first_name string
	last_name  string // want `Name 'last_name' must match pattern`
}

//checkstyle:suppress all
func main() {}

// Wide takes many options.
//
//checkstyle:suppress parameternumber
func Wide(a, b, c, d, e, f, g, h int) {}

// Typed names the check by its type.
//
//checkstyle:suppress ParameterNumberCheck
func Typed(a, b, c, d, e, f, g, h int) {}

// Narrow suppresses an unrelated check.
//
//checkstyle:suppress membername
func Narrow(a, b, c, d, e, f, g, h int) {} // want `More than 7 parameters \(found 8\)`

const (
	//checkstyle:suppress constantname
	max_retries = 3
	min_retries = 1 // want `Name 'min_retries' must match pattern`
)

//checkstyle:suppress membername
var (
	bad_one = 1
	bad_two = 2
)

var _ = legacy{}
