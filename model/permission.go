// file: model/permission.go

package model

// Permission is one menu-level permission row for a user group.
// Composite identity is (Group, MenuName). The flag columns are 0/1 and
// nullable in the database, hence the pointer types.
type Permission struct {
	Audit
	ID         int64  `json:"id"`
	Group      string `json:"group"`
	MenuName   string `json:"menu_name"`
	MenuActive *int   `json:"menu_active,omitempty"`
	MenuInsert *int   `json:"menu_insert,omitempty"`
	MenuUpdate *int   `json:"menu_update,omitempty"`
	MenuDelete *int   `json:"menu_delete,omitempty"`
	MenuRead   *int   `json:"menu_read,omitempty"`
}
