package component

// Persistent marks an entity that is written back out when a level is
// saved. ID is a uuid stable across save and load.
type Persistent struct {
	ID     string
	Prefab string
}

var PersistentComponent = NewComponent[Persistent]()
