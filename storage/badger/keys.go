package badger

// Key prefixes for different data types
const (
	itemPrefix       = "itm"
	collectionPrefix = "col"
)

// makeItemKey generates a key for an item. Format: prefix:collection:id
func makeItemKey(collection, id string) []byte {
	return []byte(itemPrefix + ":" + collection + ":" + id)
}

// makeItemScanPrefix generates the iteration prefix covering every item
// of one collection.
func makeItemScanPrefix(collection string) []byte {
	return []byte(itemPrefix + ":" + collection + ":")
}

// makeCollectionKey generates the registry key marking a collection as
// known, so empty collections still show up in listings.
func makeCollectionKey(collection string) []byte {
	return []byte(collectionPrefix + ":" + collection)
}
