package rc

// Version is the current version of the rc library
const Version = "0.1.0"
