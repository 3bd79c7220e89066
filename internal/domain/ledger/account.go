package ledger

import (
	"errors"
	"fmt"
)

// DefaultCurrency is the commodity used for created accounts, as in the
// GnuCash books this tool manages.
const DefaultCurrency = "EUR"

var (
	ErrNoBook              = errors.New("ledger file has no book")
	ErrAccountNotFound     = errors.New("account not found")
	ErrBaseAccountNotFound = errors.New("configured base account does not exist")
)

type AccountType string

const (
	TypeRoot      AccountType = "ROOT"
	TypeAsset     AccountType = "ASSET"
	TypeBank      AccountType = "BANK"
	TypeLiability AccountType = "LIABILITY"
	TypeIncome    AccountType = "INCOME"
	TypeExpense   AccountType = "EXPENSE"
)

// Well-known account roles provisioned under the configured base accounts.
const (
	NameDirektkredite = "Direktkredite"      // principal liability
	NameAusgleich     = "DK-Ausgleich"       // balancing asset
	NameZinsen        = "Direktkreditzinsen" // interest expense
)

// ContractAccountName is the deterministic name of the dedicated liability
// account of one contract.
func ContractAccountName(contractID int64) string {
	return fmt.Sprintf("Direktkredit %03d", contractID)
}

// ContractAccountCode derives the account code from the parent's code, e.g.
// parent "DK" and contract 23 yield "DK023".
func ContractAccountCode(parentCode string, contractID int64) string {
	return fmt.Sprintf("%s%03d", parentCode, contractID)
}

// Account mirrors the GnuCash accounts table. The core only ever creates
// accounts under verified parents; it never deletes them.
type Account struct {
	GUID          string      `gorm:"column:guid;primaryKey;type:char(32)"`
	Name          string      `gorm:"column:name;not null"`
	Type          AccountType `gorm:"column:account_type;not null"`
	CommodityGUID string      `gorm:"column:commodity_guid;type:char(32)"`
	CommoditySCU  int         `gorm:"column:commodity_scu;not null"`
	NonStdSCU     int         `gorm:"column:non_std_scu;not null"`
	ParentGUID    *string     `gorm:"column:parent_guid;type:char(32);index"`
	Code          string      `gorm:"column:code"`
	Description   string      `gorm:"column:description"`
	Hidden        bool        `gorm:"column:hidden"`
	Placeholder   bool        `gorm:"column:placeholder"`
}

func (Account) TableName() string { return "accounts" }

// Commodity mirrors the GnuCash commodities table (currencies only, as far
// as this core is concerned).
type Commodity struct {
	GUID      string `gorm:"column:guid;primaryKey;type:char(32)"`
	Namespace string `gorm:"column:namespace;not null"`
	Mnemonic  string `gorm:"column:mnemonic;not null"`
	Fullname  string `gorm:"column:fullname"`
	Fraction  int    `gorm:"column:fraction;not null"`
	QuoteFlag bool   `gorm:"column:quote_flag"`
}

func (Commodity) TableName() string { return "commodities" }

// Book mirrors the GnuCash books table; it anchors the account tree.
type Book struct {
	GUID             string `gorm:"column:guid;primaryKey;type:char(32)"`
	RootAccountGUID  string `gorm:"column:root_account_guid;type:char(32);not null"`
	RootTemplateGUID string `gorm:"column:root_template_guid;type:char(32)"`
}

func (Book) TableName() string { return "books" }
