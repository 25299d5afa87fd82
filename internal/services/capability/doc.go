// Package capability gates commands that read private device data behind
// OS-level permissions, and administers which permissions are granted.
//
// Call-log and SMS-inbox commands each require their own capability. The
// location command requires either the fine or the coarse location
// capability; the handler then picks the best provider it may use. Battery
// and light commands are ungated.
package capability
