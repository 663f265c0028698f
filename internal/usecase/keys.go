package usecase

import "github.com/google/uuid"

// keyNamespace seeds deterministic store keys.
var keyNamespace = uuid.MustParse("6f1c2b8e-4d3a-5e7f-9a0b-1c2d3e4f5a6b")

// Kinds of documents that are created at most once per parent.
const (
	keySalesOrder    = "sales_order"
	keyContract      = "contract"
	keyInvoice       = "invoice"
	keyLead          = "lead"
	keyEquipment     = "equipment"
	keyOrderDispatch = "order_dispatch"
)

// documentKey derives the store key of the single document of kind owned by
// ref. Inserting under it turns "create once" into a conditional put.
func documentKey(kind, ref string) string {
	return uuid.NewSHA1(keyNamespace, []byte(kind+":"+ref)).String()
}

func newKey() string {
	return uuid.NewString()
}
