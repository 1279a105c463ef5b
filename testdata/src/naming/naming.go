// Package naming exercises the naming, size and documentation checks of the
// built-in configuration.
package naming

// Config is documented.
type Config struct {
	Good     int
	bad_name int // want `Name 'bad_name' must match pattern .* \(membername\)`
	_        int
}

type undocumented struct{} // want `Missing a Javadoc comment. \(javadoctype\)`

const (
	MaxSize   = 10
	max_count = 3 // want `Name 'max_count' must match pattern .* \(constantname\)`
)

var global_var = 1 // want `Name 'global_var' must match pattern`

var _ = undocumented{}

func main() {} // want `Uncommented main method found. \(uncommentedmain\)`

// Many takes too many parameters.
func Many(a, b, c, d, e, f, g, h int) {} // want `More than 7 parameters \(found 8\). \(parameternumber\)`

// Few is fine.
func Few(a, b int) {}
