// Command gmapctl builds, validates and inspects generalized maps in
// their flat JSON form, optionally snapshotting them to a SQLite store.
package main

func main() {
	Execute()
}
