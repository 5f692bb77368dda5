package domain

// KeyPrefix namespaces every key this service writes to the store. The
// composition root may override it from configuration before any repository
// is constructed; it must not change afterwards.
var KeyPrefix = "compass:"
