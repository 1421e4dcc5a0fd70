package model

// Role ユーザーの権限ロール
type Role string

const (
	// RoleUser 一般ユーザー（自組織のデータ閲覧のみ）
	RoleUser Role = "user"
	// RoleOrgAdmin 組織管理者（自組織の施設・サービスエリアを管理できる）
	RoleOrgAdmin Role = "org_admin"
	// RoleAdmin グローバル管理者（全組織を管理できる。org_idを持たない）
	RoleAdmin Role = "admin"
)

// User usersテーブルの行。認証フロー側で作成され、本サービスからは読み取り専用
type User struct {
	ID    string  `json:"id" db:"id"`
	Role  Role    `json:"role" db:"role"`
	OrgID *string `json:"org_id,omitempty" db:"org_id"` // グローバル管理者はNULL
}

// Principal セッション解決後の呼び出し元の確定済みアイデンティティ。
// リクエストごとに再解決され、リクエストを跨いでキャッシュしない
type Principal struct {
	UserID string
	Role   Role
	OrgID  *string
}

// PrincipalFromUser usersテーブルの行からPrincipalを作成
func PrincipalFromUser(u *User) Principal {
	return Principal{UserID: u.ID, Role: u.Role, OrgID: u.OrgID}
}

// IsGlobalAdmin グローバル管理者かどうか
func (p Principal) IsGlobalAdmin() bool {
	return p.Role == RoleAdmin
}

// InOrg 指定された組織に所属しているかチェック
func (p Principal) InOrg(orgID string) bool {
	return p.OrgID != nil && *p.OrgID == orgID
}
