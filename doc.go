// Package guard provides parameter guards: small generic functions that check
// an argument and either hand it back unchanged or return a descriptive error
// naming the parameter, its value and the violated constraint.
//
// Guards are grouped by the kind of value they inspect:
//
//   - Ordered values: CheckIsInsideRange, CheckIsGreaterThan, CheckIsEqualOrGreaterThan,
//     CheckIsLessThan, CheckIsEqualOrLessThan and the pairwise FailIf* checks.
//     Every one has a *Func variant for types with their own comparison, such as
//     time.Time.Compare.
//   - Presence: CheckIsNotNull, CheckIsNotZero, CheckIsNotNilUUID.
//   - Membership: CheckIsDefinedInEnum, CheckIsInWhitelist.
//   - Collections: CheckIsNotNullOrEmpty, CheckMapIsNotNullOrEmpty, CheckSeqIsNotNullOrEmpty.
//   - Strings: CheckIsNotNullOrBlank, CheckMatchesPattern, CheckMatchesRegexp,
//     CheckIsHexString, DecodeHexString, CheckIsUUIDString.
//
// # Usage
//
//	func NewServer(addr string, port int, origins []string) (*Server, error) {
//	    if _, err := guard.CheckIsNotNullOrBlank(addr, "addr"); err != nil {
//	        return nil, err
//	    }
//	    if _, err := guard.CheckIsInsideRange(port, 1, 65535, "port"); err != nil {
//	        return nil, err
//	    }
//	    if _, err := guard.CheckIsNotNullOrEmpty(origins, "origins"); err != nil {
//	        return nil, err
//	    }
//	    // ...
//	}
//
// Guards return their input so they compose inline; Must converts a failure
// into a panic for initialization code:
//
//	key := guard.Must(guard.CheckIsHexString(os.Getenv("KEY"), "KEY", guard.WithMinByteSize(32)))
//
// Go cannot capture the caller's argument expression, so the parameter name is
// always passed explicitly as the last argument.
//
// # Error Handling
//
// Every failure is an *Error carrying the Kind, the parameter name, a rendered
// message and the substituted values. *Error unwraps to a sentinel per kind:
//
//	if errors.Is(err, guard.ErrOutOfRange) { ... }
//
//	var gerr *guard.Error
//	if errors.As(err, &gerr) {
//	    log.Printf("bad %s: %s", gerr.Param, gerr.Message)
//	}
//
// Checks fail fast: a guard reports the first violated condition only. Values
// rendered into messages are capped at 250 characters ("..." marks the cut),
// and the value is returned alongside the error even on failure.
//
// The package holds no state and every guard is safe for concurrent use.
package guard
