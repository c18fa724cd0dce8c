package model

// LogEntry is one row of the append-only audit trail in the `logs`
// table.  UserID names the acting principal and may reference either
// table depending on who acted, so it carries no foreign key.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – id of the acting admin or user (zero when unknown).
//  Action    – short machine-friendly action tag.
//  Details   – free-form human-readable context.
//  Timestamp – when the action happened.
type LogEntry struct {
    ID        uint64 // logs.log_id
    UserID    uint64 // logs.user_id
    Action    string // logs.action
    Details   string // logs.details
    Timestamp string // logs.timestamp
}
