package models

// Version is the tool version, stamped into provenance tags and the CLI
// version output.
const Version = "0.1.0"
