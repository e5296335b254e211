//go:generate go run github.com/dmarkham/enumer -type=ShellType -trimprefix=ShellType -transform=kebab
package slice

// SliceSpec is everything the slice command needs once flags and
// configuration have been merged.
type SliceSpec struct {
	Start        int
	Ranges       []IntRange
	Pick         NaturalRangeFilter
	Index        bool
	InputFormat  []string
	OutputFormat []string
	ExportVar    string
	ExportGlobal bool
	ShellType    ShellType
}

type ShellType int

const (
	ShellTypeAuto ShellType = iota
	ShellTypeSh
	ShellTypePowershell
	ShellTypeCmd
)
