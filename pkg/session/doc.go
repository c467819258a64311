/*
Package session coordinates access to cached results.

A Manager serializes work on the same puzzle digest so that concurrent
requests for one puzzle walk it once and share the stored result. Locks are
held in memory per process and, when a DistributedLocker is configured,
across replicas sharing a store.
*/
package session
