package phi

// Value is a single digit amount. It is used both as a coefficient in
// a rule and as a digit on a tape. Digits are bounded machine
// integers; arbitrary precision is out of scope.
type Value uint32
