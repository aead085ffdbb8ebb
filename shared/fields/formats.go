package fields

import (
	"fmt"
	"unicode/utf8"
)

// emailFormat enumerates the username layouts. Each variant is a pure
// function of the row's data; a random index picks the variant per row.
type emailFormat int

const (
	emailFirstDotLast emailFormat = iota
	emailLastDotFirst
	emailFirstNumber
	emailInitialLast

	numEmailFormats
)

func formatEmailLocal(format emailFormat, first, last string, number int) string {
	switch format {
	case emailFirstDotLast:
		return first + "." + last
	case emailLastDotFirst:
		return last + "." + first
	case emailFirstNumber:
		return fmt.Sprintf("%s%d", first, number)
	case emailInitialLast:
		initial, _ := utf8.DecodeRuneInString(first)
		if initial == utf8.RuneError {
			return last
		}
		return string(initial) + last
	default:
		return first + "." + last
	}
}

// companyFormat enumerates the company-name layouts.
type companyFormat int

const (
	companySuffixed companyFormat = iota
	companyHyphenated
	companyPartnership

	numCompanyFormats
)

func formatCompany(format companyFormat, first, second, third, suffix string) string {
	switch format {
	case companySuffixed:
		return first + " " + suffix
	case companyHyphenated:
		return first + "-" + second
	case companyPartnership:
		return first + ", " + second + " and " + third
	default:
		return first + " " + suffix
	}
}
