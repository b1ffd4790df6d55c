// Command datagen writes a deterministic corpus of payment resource
// snapshots and creation request bodies into testdata/. Consumers of the
// contract use the files to test their own transport and persistence layers
// against realistic shapes.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/wakala/payments"
)

func main() {
	rng := rand.New(rand.NewSource(7))
	baseDir := findTestdataDir()

	resources := generateResources(rng, 40)

	var encoded []json.RawMessage
	for i, p := range resources {
		body, err := json.Marshal(p)
		if err != nil {
			log.Fatalf("marshal resource %d: %v", i, err)
		}
		// Every generated fixture must survive a parse round-trip.
		if _, err := payments.ParseResource(body); err != nil {
			log.Fatalf("fixture %d does not parse: %v", i, err)
		}
		encoded = append(encoded, body)
	}
	writeJSONFile(filepath.Join(baseDir, "payments.json"), encoded)
	fmt.Printf("Generated %d payment resources -> payments.json\n", len(encoded))

	requests := sampleRequests()
	writeJSONFile(filepath.Join(baseDir, "requests.json"), requests)
	fmt.Printf("Generated %d creation requests -> requests.json\n", len(requests))
}

// stableID derives a reproducible identifier so the corpus does not churn
// between runs.
func stableID(prefix, seed string) string {
	return prefix + "_" + uuid.NewSHA1(uuid.NameSpaceOID, []byte(seed)).String()
}

func generateResources(rng *rand.Rand, count int) []payments.Payment {
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	accounts := make([]string, 6)
	for i := range accounts {
		accounts[i] = stableID("acc", fmt.Sprintf("account-%d", i))
	}

	outbound := []payments.Status{
		payments.StatusPending, payments.StatusPendingReview, payments.StatusClearing,
		payments.StatusSent, payments.StatusRejected, payments.StatusCanceled, payments.StatusReturned,
	}

	var out []payments.Payment
	for i := 0; i < count; i++ {
		id := stableID("pay", fmt.Sprintf("payment-%d", i))
		createdAt := payments.DateTime{Time: start.Add(time.Duration(i) * 3 * time.Hour)}
		amount := int64(rng.Intn(250000) + 1)
		account := payments.Relationship{Type: payments.RefTypeDepositAccount, ID: accounts[rng.Intn(len(accounts))]}
		customer := &payments.Relationship{Type: payments.RefTypeCustomer, ID: stableID("cus", fmt.Sprintf("customer-%d", i%4))}

		status := outbound[rng.Intn(len(outbound))]
		reason := ""
		if status == payments.StatusRejected {
			reason = payments.ReasonCounterpartyInsufficientFunds
		}
		if status == payments.StatusReturned {
			reason = "ClosedAccount"
		}

		switch i % 5 {
		case 0:
			out = append(out, &payments.ACHPayment{
				ID: id,
				Attributes: payments.ACHPaymentAttributes{
					CreatedAt:   createdAt,
					Status:      status,
					Reason:      reason,
					Direction:   payments.DirectionCredit,
					Description: "Payroll",
					Amount:      amount,
					Counterparty: payments.Counterparty{
						RoutingNumber: "812345678",
						AccountNumber: fmt.Sprintf("10000%05d", i),
						AccountType:   payments.AccountTypeChecking,
						Name:          "Jane Smith",
					},
					Tags: payments.Tags{"batch": fmt.Sprintf("2024-03-%02d", i%28+1)},
				},
				Relationships: payments.ACHPaymentRelationships{
					Account:      account,
					Counterparty: payments.Relationship{Type: payments.RefTypeCounterparty, ID: stableID("cp", fmt.Sprintf("counterparty-%d", i))},
					Customer:     customer,
				},
			})
		case 1:
			out = append(out, &payments.BookPayment{
				ID: id,
				Attributes: payments.BookPaymentAttributes{
					CreatedAt:   createdAt,
					Status:      status,
					Reason:      reason,
					Direction:   payments.DirectionDebit,
					Description: "Internal transfer between operating accounts",
					Amount:      amount,
				},
				Relationships: payments.BookPaymentRelationships{
					Account:              account,
					CounterpartyAccount:  payments.Relationship{Type: payments.RefTypeDepositAccount, ID: accounts[(i+1)%len(accounts)]},
					CounterpartyCustomer: payments.Relationship{Type: payments.RefTypeCustomer, ID: stableID("cus", fmt.Sprintf("customer-%d", (i+1)%4))},
					Customer:             customer,
				},
			})
		case 2:
			out = append(out, &payments.WirePayment{
				ID: id,
				Attributes: payments.WirePaymentAttributes{
					CreatedAt:   createdAt,
					Status:      status,
					Reason:      reason,
					Direction:   payments.DirectionCredit,
					Description: "Closing funds for 20 Ingram St",
					Amount:      amount,
					Counterparty: payments.WireCounterparty{
						RoutingNumber: "812345678",
						AccountNumber: fmt.Sprintf("20000%05d", i),
						Name:          "Acme Title LLC",
						Address: payments.Address{
							Street:     "20 Ingram St",
							City:       "Forest Hills",
							State:      "NY",
							PostalCode: "11375",
							Country:    "US",
						},
					},
				},
				Relationships: payments.WirePaymentRelationships{
					Account:  account,
					Customer: customer,
				},
			})
		case 3:
			out = append(out, &payments.BillPayment{
				ID: id,
				Attributes: payments.BillPaymentAttributes{
					CreatedAt:   createdAt,
					Status:      status,
					Direction:   payments.DirectionCredit,
					Description: "City of Austin utilities",
					Amount:      amount,
				},
				Relationships: payments.BillPaymentRelationships{
					Account:  account,
					Customer: customer,
				},
			})
		default:
			received := []payments.ReceivedStatus{
				payments.ReceivedStatusPending, payments.ReceivedStatusAdvanced,
				payments.ReceivedStatusCompleted, payments.ReceivedStatusReturned,
			}
			rs := received[rng.Intn(len(received))]
			// wasAdvanced is sticky: it survives completion of an advance.
			wasAdvanced := rs == payments.ReceivedStatusAdvanced ||
				(rs == payments.ReceivedStatusCompleted && rng.Intn(2) == 0)
			returnReason := ""
			if rs == payments.ReceivedStatusReturned {
				returnReason = "InsufficientFunds"
			}
			out = append(out, &payments.ACHReceivedPayment{
				ID: id,
				Attributes: payments.ACHReceivedPaymentAttributes{
					CreatedAt:                 createdAt,
					Status:                    rs,
					WasAdvanced:               wasAdvanced,
					Direction:                 payments.DirectionCredit,
					Description:               "Sales",
					Amount:                    amount,
					CompletionDate:            payments.DateTime{Time: createdAt.AddDate(0, 0, 2)},
					ReturnReason:              returnReason,
					CompanyName:               "Shoptastic Inc",
					CounterpartyRoutingNumber: "021000021",
					TraceNumber:               fmt.Sprintf("0210000294617%02d", i%100),
					SECCode:                   payments.SECCodeCCD,
				},
				Relationships: payments.ACHReceivedPaymentRelationships{
					Account:                   account,
					Customer:                  customer,
					ReceivePaymentTransaction: &payments.Relationship{Type: payments.RefTypeTransaction, ID: stableID("txn", fmt.Sprintf("receive-%d", i))},
				},
			})
		}
	}
	return out
}

func sampleRequests() []payments.CreatePaymentRequest {
	account := map[string]payments.Relationship{
		"account": {Type: payments.RefTypeDepositAccount, ID: stableID("acc", "account-0")},
	}

	wire, err := payments.BuildRequest(payments.TypeWirePayment, map[string]any{
		"amount":      1000,
		"description": "rent",
		"counterparty": map[string]any{
			"routingNumber": "812345678",
			"accountNumber": "1000000001",
			"name":          "Acme Property Management",
			"address": map[string]any{
				"street":     "20 Ingram St",
				"city":       "Forest Hills",
				"state":      "NY",
				"postalCode": "11375",
				"country":    "US",
			},
		},
		"idempotencyKey": stableID("idem", "wire-0"),
	}, account)
	if err != nil {
		log.Fatalf("build wire request: %v", err)
	}

	book, err := payments.BuildRequest(payments.TypeBookPayment, map[string]any{
		"amount":      7500,
		"description": "Allowance",
	}, map[string]payments.Relationship{
		"account":             {Type: payments.RefTypeDepositAccount, ID: stableID("acc", "account-0")},
		"counterpartyAccount": {Type: payments.RefTypeDepositAccount, ID: stableID("acc", "account-1")},
	})
	if err != nil {
		log.Fatalf("build book request: %v", err)
	}

	inline, err := payments.BuildRequest(payments.TypeACHPayment, map[string]any{
		"amount":      500,
		"direction":   "Debit",
		"description": "Gym dues",
		"counterparty": map[string]any{
			"routingNumber": "812345678",
			"accountNumber": "1000000001",
			"accountType":   "Checking",
			"name":          "Jane Smith",
		},
		"verifyCounterpartyBalance": true,
	}, account)
	if err != nil {
		log.Fatalf("build inline ACH request: %v", err)
	}

	linked, err := payments.BuildRequest(payments.TypeACHPayment, map[string]any{
		"amount":      500,
		"direction":   "Credit",
		"description": "Refund",
	}, map[string]payments.Relationship{
		"account":      {Type: payments.RefTypeDepositAccount, ID: stableID("acc", "account-0")},
		"counterparty": {Type: payments.RefTypeCounterparty, ID: stableID("cp", "counterparty-0")},
	})
	if err != nil {
		log.Fatalf("build linked ACH request: %v", err)
	}

	verified, err := payments.BuildRequest(payments.TypeACHPayment, map[string]any{
		"amount":              500,
		"direction":           "Debit",
		"description":         "Gym dues",
		"plaidProcessorToken": "processor-sandbox-0asd1-a92nc",
		"counterpartyName":    "Jane Smith",
	}, account)
	if err != nil {
		log.Fatalf("build verified ACH request: %v", err)
	}

	return []payments.CreatePaymentRequest{wire, book, inline, linked, verified}
}

func writeJSONFile(path string, v any) {
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Fatalf("encode %s: %v", path, err)
	}
}

func findTestdataDir() string {
	candidates := []string{
		"testdata",
		filepath.Join("..", "..", "testdata"),
	}
	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && info.IsDir() {
			return c
		}
	}
	if err := os.MkdirAll("testdata", 0o755); err != nil {
		log.Fatalf("create testdata dir: %v", err)
	}
	return "testdata"
}
