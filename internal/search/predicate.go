package search

import (
	"fmt"
	"strings"
)

// Field is a logical transaction field a predicate can constrain.
type Field string

const (
	FieldAccountID         Field = "accountId"
	FieldToAccountID       Field = "toAccountId"
	FieldTransactionType   Field = "transactionType"
	FieldStatus            Field = "status"
	FieldAmount            Field = "amount"
	FieldDate              Field = "date"
	FieldPayeeID           Field = "payeeId"
	FieldCategoryID        Field = "categoryId"
	FieldSubcategoryID     Field = "subcategoryId"
	FieldTransactionNumber Field = "transactionNumber"
	FieldNotes             Field = "notes"
)

// Operator is a comparison operator.
type Operator string

const (
	OpEqual          Operator = "="
	OpGreaterOrEqual Operator = ">="
	OpLessOrEqual    Operator = "<="
)

// LikeEscape is the escape character used in every LIKE pattern.
const LikeEscape = `\`

// Node is one element of a predicate expression tree.
type Node interface {
	render(w *sqlWriter)
}

// Compare is "field op value".
type Compare struct {
	Field Field
	Op    Operator
	Value interface{}
}

// In is "field IN (values...)". Values is never empty.
type In struct {
	Field  Field
	Values []interface{}
}

// Match is a case-insensitive LIKE match. Pattern is already escaped and
// carries its own wildcards.
type Match struct {
	Field   Field
	Pattern string
}

// InSplits holds when Value appears in Field of any split line belonging to
// the transaction.
type InSplits struct {
	Field Field
	Value interface{}
}

// Or holds when any child holds.
type Or []Node

// And holds when every child holds.
type And []Node

func (n Compare) render(w *sqlWriter) {
	w.write(w.column(n.Field), " ", string(n.Op), " ")
	w.bind(n.Value)
}

func (n In) render(w *sqlWriter) {
	w.write(w.column(n.Field), " IN (")
	for i, v := range n.Values {
		if i > 0 {
			w.write(", ")
		}
		w.bind(v)
	}
	w.write(")")
}

func (n Match) render(w *sqlWriter) {
	w.write("LOWER(", w.column(n.Field), ") LIKE LOWER(")
	w.bind(n.Pattern)
	w.write(") ESCAPE '", LikeEscape, "'")
}

func (n InSplits) render(w *sqlWriter) {
	c := w.cols
	w.bind(n.Value)
	w.write(" IN (SELECT ", c.splitColumn(n.Field),
		" FROM ", c.splitTable(),
		" WHERE ", c.splitTransactionID(), " = ", c.transactionID(), ")")
}

func (n Or) render(w *sqlWriter) {
	w.write("(")
	for i, child := range n {
		if i > 0 {
			w.write(" OR ")
		}
		child.render(w)
	}
	w.write(")")
}

func (n And) render(w *sqlWriter) {
	if len(n) == 0 {
		w.write("1 = 1")
		return
	}
	for i, child := range n {
		if i > 0 {
			w.write(" AND ")
		}
		child.render(w)
	}
}

// Columns maps logical fields onto a physical schema. Unmapped names fall
// back to the logical name, so the zero value renders the named-field form.
type Columns struct {
	Fields             map[Field]string
	SplitTable         string
	SplitTransactionID string
	SplitFields        map[Field]string
	// TransactionID is the outer row's id as seen from the split subquery.
	TransactionID string
}

// DefaultColumns maps onto the transactions and split_transactions tables.
func DefaultColumns() Columns {
	return Columns{
		Fields: map[Field]string{
			FieldAccountID:         "transactions.account_id",
			FieldToAccountID:       "transactions.to_account_id",
			FieldTransactionType:   "transactions.trans_code",
			FieldStatus:            "transactions.status",
			FieldAmount:            "transactions.amount",
			FieldDate:              "transactions.trans_date",
			FieldPayeeID:           "transactions.payee_id",
			FieldCategoryID:        "transactions.category_id",
			FieldSubcategoryID:     "transactions.subcategory_id",
			FieldTransactionNumber: "transactions.transaction_number",
			FieldNotes:             "transactions.notes",
		},
		SplitTable:         "split_transactions",
		SplitTransactionID: "split_transactions.transaction_id",
		SplitFields: map[Field]string{
			FieldCategoryID:    "split_transactions.category_id",
			FieldSubcategoryID: "split_transactions.subcategory_id",
		},
		TransactionID: "transactions.id",
	}
}

func (c Columns) column(f Field) string {
	if name, ok := c.Fields[f]; ok {
		return name
	}
	return string(f)
}

func (c Columns) splitColumn(f Field) string {
	if name, ok := c.SplitFields[f]; ok {
		return name
	}
	return string(f)
}

func (c Columns) splitTable() string {
	if c.SplitTable != "" {
		return c.SplitTable
	}
	return "splits"
}

func (c Columns) splitTransactionID() string {
	if c.SplitTransactionID != "" {
		return c.SplitTransactionID
	}
	return "transactionId"
}

func (c Columns) transactionID() string {
	if c.TransactionID != "" {
		return c.TransactionID
	}
	return "id"
}

type sqlWriter struct {
	cols Columns
	sb   strings.Builder
	args []interface{}
}

func (w *sqlWriter) column(f Field) string {
	return w.cols.column(f)
}

func (w *sqlWriter) write(parts ...string) {
	for _, p := range parts {
		w.sb.WriteString(p)
	}
}

func (w *sqlWriter) bind(v interface{}) {
	w.sb.WriteString("?")
	w.args = append(w.args, v)
}

// Predicate is the AND of its conditions, each contributed by one criteria
// field. An empty predicate matches every row.
type Predicate struct {
	Conditions And
}

// IsEmpty reports whether the predicate is unconstrained.
func (p Predicate) IsEmpty() bool {
	return len(p.Conditions) == 0
}

// Render returns the WHERE expression with "?" placeholders and the bound
// values in placeholder order.
func (p Predicate) Render(cols Columns) (string, []interface{}) {
	w := &sqlWriter{cols: cols}
	p.Conditions.render(w)
	return w.sb.String(), w.args
}

// Where renders against DefaultColumns.
func (p Predicate) Where() (string, []interface{}) {
	return p.Render(DefaultColumns())
}

// Text renders the predicate over the logical field names.
func (p Predicate) Text() string {
	text, _ := p.Render(Columns{})
	return text
}

// Args returns the bound values in placeholder order.
func (p Predicate) Args() []interface{} {
	_, args := p.Render(Columns{})
	return args
}

func (p Predicate) String() string {
	text, args := p.Render(Columns{})
	return fmt.Sprintf("%s %v", text, args)
}
