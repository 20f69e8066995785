package parser

// ColumnIndex converts a cell reference such as "C7" or "AA12" to a
// zero-based column index. Only the ASCII letters are used; they are read
// as a base-26 number where A=1 and Z=26. A reference with no letters
// yields -1.
func ColumnIndex(ref string) int {
	index := 0
	for i := 0; i < len(ref); i++ {
		ch := ref[i]
		switch {
		case ch >= 'a' && ch <= 'z':
			ch -= 'a' - 'A'
		case ch >= 'A' && ch <= 'Z':
		default:
			continue
		}
		index = index*26 + int(ch-'A') + 1
	}
	return index - 1
}
