package eventmodels

import "fmt"

var InvalidDateFormatErr = fmt.Errorf("date does not match expected format")
var SourceNotFoundErr = fmt.Errorf("dividend source file does not exist")
var InsufficientDataErr = fmt.Errorf("at least two dividends are required")
var DuplicateDateErr = fmt.Errorf("consecutive dividends share the same date")
var MissingAmountErr = fmt.Errorf("dividend has no amount")
