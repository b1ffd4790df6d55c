package payments

// Description and addenda ceilings imposed by the banking core. The ACH
// family (including received payments) carries the short ACH entry
// description; wire and book transfers allow the longer form. Bill payments
// originate in the external bill-pay network and have no documented ceiling.
const (
	maxDescriptionACH  = 10
	maxDescriptionWire = 50
	maxDescriptionBook = 50
	maxAddenda         = 50
)

type attrKind int

const (
	kindString attrKind = iota
	kindPosInt
	kindBool
	kindTimestamp
	kindACHCounterparty
	kindWireCounterparty
	kindTags
)

// attrRule constrains a single attribute of a resource variant.
type attrRule struct {
	kind     attrKind
	required bool
	maxLen   int      // strings only; 0 means unbounded
	oneOf    []string // strings only; enum membership
}

// relRule constrains a single relationship key of a resource variant.
type relRule struct {
	required bool
	list     bool
	refType  string
}

// variantRule is the full rule set for one resource discriminator. Fields
// absent from the maps are not allowed for the variant.
type variantRule struct {
	attrs     map[string]attrRule
	rels      map[string]relRule
	patchable bool
	decode    func(env resourceEnvelope) (Payment, error)
}

var (
	outboundStatuses = []string{
		string(StatusPending), string(StatusPendingReview), string(StatusClearing),
		string(StatusRejected), string(StatusCanceled), string(StatusSent), string(StatusReturned),
	}
	receivedStatuses = []string{
		string(ReceivedStatusPending), string(ReceivedStatusAdvanced),
		string(ReceivedStatusCompleted), string(ReceivedStatusReturned),
	}
	directions = []string{string(DirectionCredit), string(DirectionDebit)}
	secCodes   = []string{string(SECCodePPD), string(SECCodeWEB), string(SECCodeCCD), string(SECCodeTEL)}
)

// ownerRels are the relationship keys every outbound variant may carry: the
// owning customer (single or joint) and the ledger entry the payment
// produced. customer and customers are mutually exclusive.
func ownerRels() map[string]relRule {
	return map[string]relRule{
		"customer":    {refType: RefTypeCustomer},
		"customers":   {list: true, refType: RefTypeCustomer},
		"transaction": {refType: RefTypeTransaction},
	}
}

func withAccount(rels map[string]relRule, extra map[string]relRule) map[string]relRule {
	rels["account"] = relRule{required: true, refType: RefTypeDepositAccount}
	for k, v := range extra {
		rels[k] = v
	}
	return rels
}

var resourceRules = map[string]variantRule{
	TypeACHPayment: {
		attrs: map[string]attrRule{
			"createdAt":      {kind: kindTimestamp, required: true},
			"status":         {kind: kindString, required: true, oneOf: outboundStatuses},
			"reason":         {kind: kindString},
			"direction":      {kind: kindString, required: true, oneOf: directions},
			"description":    {kind: kindString, required: true, maxLen: maxDescriptionACH},
			"amount":         {kind: kindPosInt, required: true},
			"counterparty":   {kind: kindACHCounterparty, required: true},
			"addenda":        {kind: kindString, maxLen: maxAddenda},
			"settlementDate": {kind: kindTimestamp},
			"tags":           {kind: kindTags},
		},
		rels: withAccount(ownerRels(), map[string]relRule{
			"counterparty": {required: true, refType: RefTypeCounterparty},
		}),
		patchable: true,
		decode:    decodeACHPayment,
	},
	TypeBookPayment: {
		attrs: map[string]attrRule{
			"createdAt":   {kind: kindTimestamp, required: true},
			"status":      {kind: kindString, required: true, oneOf: outboundStatuses},
			"reason":      {kind: kindString},
			"direction":   {kind: kindString, required: true, oneOf: directions},
			"description": {kind: kindString, required: true, maxLen: maxDescriptionBook},
			"amount":      {kind: kindPosInt, required: true},
			"tags":        {kind: kindTags},
		},
		rels: withAccount(ownerRels(), map[string]relRule{
			"counterpartyAccount":  {required: true, refType: RefTypeDepositAccount},
			"counterpartyCustomer": {required: true, refType: RefTypeCustomer},
		}),
		patchable: true,
		decode:    decodeBookPayment,
	},
	TypeWirePayment: {
		attrs: map[string]attrRule{
			"createdAt":    {kind: kindTimestamp, required: true},
			"status":       {kind: kindString, required: true, oneOf: outboundStatuses},
			"reason":       {kind: kindString},
			"direction":    {kind: kindString, required: true, oneOf: directions},
			"description":  {kind: kindString, required: true, maxLen: maxDescriptionWire},
			"amount":       {kind: kindPosInt, required: true},
			"counterparty": {kind: kindWireCounterparty, required: true},
			"tags":         {kind: kindTags},
		},
		rels:   withAccount(ownerRels(), nil),
		decode: decodeWirePayment,
	},
	TypeBillPayment: {
		attrs: map[string]attrRule{
			"createdAt":   {kind: kindTimestamp, required: true},
			"status":      {kind: kindString, required: true, oneOf: outboundStatuses},
			"direction":   {kind: kindString, required: true, oneOf: directions},
			"description": {kind: kindString, required: true},
			"amount":      {kind: kindPosInt, required: true},
			"tags":        {kind: kindTags},
		},
		rels:   withAccount(ownerRels(), nil),
		decode: decodeBillPayment,
	},
	TypeACHReceivedPayment: {
		attrs: map[string]attrRule{
			"createdAt":                 {kind: kindTimestamp, required: true},
			"status":                    {kind: kindString, required: true, oneOf: receivedStatuses},
			"wasAdvanced":               {kind: kindBool, required: true},
			"direction":                 {kind: kindString, required: true, oneOf: directions},
			"description":               {kind: kindString, required: true, maxLen: maxDescriptionACH},
			"amount":                    {kind: kindPosInt, required: true},
			"completionDate":            {kind: kindTimestamp, required: true},
			"returnReason":              {kind: kindString},
			"addenda":                   {kind: kindString, maxLen: maxAddenda},
			"companyName":               {kind: kindString, required: true},
			"counterpartyRoutingNumber": {kind: kindString, required: true},
			"traceNumber":               {kind: kindString, required: true},
			"secCode":                   {kind: kindString, oneOf: secCodes},
			"tags":                      {kind: kindTags},
		},
		rels: withAccount(map[string]relRule{
			"customer":                       {refType: RefTypeCustomer},
			"customers":                      {list: true, refType: RefTypeCustomer},
			"receivePaymentTransaction":      {refType: RefTypeTransaction},
			"paymentAdvanceTransaction":      {refType: RefTypeTransaction},
			"repayPaymentAdvanceTransaction": {refType: RefTypeTransaction},
		}, nil),
		patchable: true,
		decode:    decodeACHReceivedPayment,
	},
}
