package model

// User represents an application user record as stored in the
// `users` table.  Each field corresponds to a column in the
// database.  The json tags are omitted here because these structs
// are primarily used internally by the repository layer; handlers
// define separate response types with appropriate JSON tags.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Username     – unique login name.
//  PasswordHash – bcrypt hashed password.
//  Email        – unique email address.
//  Role         – authorization tag, defaults to "user".
type User struct {
    ID           uint64 // users.user_id
    Username     string // users.username
    PasswordHash string // users.password_hash
    Email        string // users.email
    Role         string // users.role
}

// Admin represents a row in the `admins` table.  Admin accounts are
// created once at bootstrap and never modified through the API; they
// exist solely to gate the administrative surface.
//
// Fields:
//  ID           – primary key identifier of the admin.
//  Username     – unique login name.
//  PasswordHash – bcrypt hashed password.
type Admin struct {
    ID           uint64 // admins.admin_id
    Username     string // admins.username
    PasswordHash string // admins.password_hash
}
