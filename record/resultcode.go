package record

import "strconv"

// ResultCode pairs a numeric LDAP result code with its canonical name.
// Codes missing from the table stay usable: Known() reports false and the
// integer value is preserved. Lookups never fail.
type ResultCode struct {
	Value int
	name  string
}

// The table covers the standard LDAP result codes plus the client-side
// and post-RFC codes that show up in directory server access logs.
var resultCodeNames = map[int]string{
	0:     "SUCCESS",
	1:     "OPERATIONS_ERROR",
	2:     "PROTOCOL_ERROR",
	3:     "TIME_LIMIT_EXCEEDED",
	4:     "SIZE_LIMIT_EXCEEDED",
	5:     "COMPARE_FALSE",
	6:     "COMPARE_TRUE",
	7:     "AUTH_METHOD_NOT_SUPPORTED",
	8:     "STRONGER_AUTH_REQUIRED",
	10:    "REFERRAL",
	11:    "ADMIN_LIMIT_EXCEEDED",
	12:    "UNAVAILABLE_CRITICAL_EXTENSION",
	13:    "CONFIDENTIALITY_REQUIRED",
	14:    "SASL_BIND_IN_PROGRESS",
	16:    "NO_SUCH_ATTRIBUTE",
	17:    "UNDEFINED_ATTRIBUTE_TYPE",
	18:    "INAPPROPRIATE_MATCHING",
	19:    "CONSTRAINT_VIOLATION",
	20:    "ATTRIBUTE_OR_VALUE_EXISTS",
	21:    "INVALID_ATTRIBUTE_SYNTAX",
	32:    "NO_SUCH_OBJECT",
	33:    "ALIAS_PROBLEM",
	34:    "INVALID_DN_SYNTAX",
	36:    "ALIAS_DEREFERENCING_PROBLEM",
	48:    "INAPPROPRIATE_AUTHENTICATION",
	49:    "INVALID_CREDENTIALS",
	50:    "INSUFFICIENT_ACCESS_RIGHTS",
	51:    "BUSY",
	52:    "UNAVAILABLE",
	53:    "UNWILLING_TO_PERFORM",
	54:    "LOOP_DETECT",
	60:    "SORT_CONTROL_MISSING",
	61:    "OFFSET_RANGE_ERROR",
	64:    "NAMING_VIOLATION",
	65:    "OBJECT_CLASS_VIOLATION",
	66:    "NOT_ALLOWED_ON_NONLEAF",
	67:    "NOT_ALLOWED_ON_RDN",
	68:    "ENTRY_ALREADY_EXISTS",
	69:    "OBJECT_CLASS_MODS_PROHIBITED",
	71:    "AFFECTS_MULTIPLE_DSAS",
	76:    "VIRTUAL_LIST_VIEW_ERROR",
	80:    "OTHER",
	81:    "SERVER_DOWN",
	82:    "LOCAL_ERROR",
	83:    "ENCODING_ERROR",
	84:    "DECODING_ERROR",
	85:    "TIMEOUT",
	86:    "AUTH_UNKNOWN",
	87:    "FILTER_ERROR",
	88:    "USER_CANCELED",
	89:    "PARAM_ERROR",
	90:    "NO_MEMORY",
	91:    "CONNECT_ERROR",
	92:    "NOT_SUPPORTED",
	93:    "CONTROL_NOT_FOUND",
	94:    "NO_RESULTS_RETURNED",
	95:    "MORE_RESULTS_TO_RETURN",
	96:    "CLIENT_LOOP",
	97:    "REFERRAL_LIMIT_EXCEEDED",
	118:   "CANCELED",
	119:   "NO_SUCH_OPERATION",
	120:   "TOO_LATE",
	121:   "CANNOT_CANCEL",
	122:   "ASSERTION_FAILED",
	123:   "AUTHORIZATION_DENIED",
	16654: "NO_OPERATION",
}

// ResultCodeFor maps a numeric code to its canonical form.
func ResultCodeFor(value int) ResultCode {
	return ResultCode{Value: value, name: resultCodeNames[value]}
}

func (rc ResultCode) Known() bool {
	return rc.name != ""
}

// Name returns the canonical symbolic constant for the code, or
// "UNRECOGNIZED" when the code is not in the table.
func (rc ResultCode) Name() string {
	if rc.name == "" {
		return "UNRECOGNIZED"
	}
	return rc.name
}

func (rc ResultCode) String() string {
	return rc.Name() + " (" + strconv.Itoa(rc.Value) + ")"
}
