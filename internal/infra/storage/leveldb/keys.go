package leveldb

import "strconv"

const (
	versionKey       = "meta:version"
	collectionPrefix = "meta:collection:"
	indexSeparator   = "\x00"
)

func collectionKey(name string) []byte {
	return []byte(collectionPrefix + name)
}

func recordPrefix(collection string) []byte {
	return []byte("rec:" + collection + ":")
}

func recordKey(collection, key string) []byte {
	return append(recordPrefix(collection), key...)
}

// indexPrefix covers every entry of one index value. The separator keeps
// value "ab" from matching a lookup for "a".
func indexPrefix(collection, index, value string) []byte {
	return []byte("idx:" + collection + ":" + index + ":" + value + indexSeparator)
}

func indexKey(collection, index, value, key string) []byte {
	return append(indexPrefix(collection, index, value), key...)
}

func preferenceKey(key string) []byte {
	return []byte("pref:" + key)
}

func encodeVersion(v int) []byte {
	return []byte(strconv.Itoa(v))
}

func decodeVersion(b []byte) (int, error) {
	return strconv.Atoi(string(b))
}
