package testcases

// All contains all test cases, grouped by category.
var All = map[string][]TestCase{
	"board":  boardCases,
	"margin": marginCases,
	"print":  printCases,
}
