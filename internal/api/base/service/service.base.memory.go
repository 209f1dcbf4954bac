package basesvc

import (
	"context"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fullsco_api/internal/common"
	"fullsco_api/internal/utility"
)

// BaseServiceMemoryImpl keeps documents in process. It understands the subset of the MongoDB query
// language the services use: equality, $ne, $regex, sort and limit, plus the $set $unset $inc
// $setOnInsert update operators.
type BaseServiceMemoryImpl[T any] struct {
	name  string
	mu    sync.RWMutex
	docs  map[primitive.ObjectID]map[string]any
	order []primitive.ObjectID
}

// NewBaseServiceMemory returns an empty in-memory collection
func NewBaseServiceMemory[T any](name string) *BaseServiceMemoryImpl[T] {
	return &BaseServiceMemoryImpl[T]{
		name: name,
		docs: make(map[primitive.ObjectID]map[string]any),
	}
}

// Name returns the collection name
func (s *BaseServiceMemoryImpl[T]) Name() string {
	return s.name
}

// InsertOne stores data with a fresh id when it has none
func (s *BaseServiceMemoryImpl[T]) InsertOne(ctx context.Context, data T) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	doc, err := insertDocument(data)
	if err != nil {
		return zero, err
	}
	id, ok := doc["_id"].(primitive.ObjectID)
	if !ok {
		id = primitive.NewObjectID()
		doc["_id"] = id
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.docs[id]; exists {
		return zero, common.NewError(common.ErrCodeBusinessConflict, common.MsgConflict, common.StatusConflict, map[string]any{"field": "_id"})
	}
	s.docs[id] = doc
	s.order = append(s.order, id)
	return decode[T](doc)
}

// FindOne returns the first document matching filter in sort order
func (s *BaseServiceMemoryImpl[T]) FindOne(ctx context.Context, filter any, opts *options.FindOneOptions) (T, error) {
	var zero T
	findOpts := options.Find().SetLimit(1)
	if opts != nil && opts.Sort != nil {
		findOpts.SetSort(opts.Sort)
	}

	results, err := s.Find(ctx, filter, findOpts)
	if err != nil {
		return zero, err
	}
	if len(results) == 0 {
		return zero, common.ErrNotFound
	}
	return results[0], nil
}

// Find returns the matching documents, in insertion order unless a sort is given
func (s *BaseServiceMemoryImpl[T]) Find(ctx context.Context, filter any, opts *options.FindOptions) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	query, err := filterMap(filter)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	var matched []map[string]any
	for _, id := range s.order {
		doc := s.docs[id]
		ok, err := matchDocument(doc, query)
		if err != nil {
			s.mu.RUnlock()
			return nil, err
		}
		if ok {
			matched = append(matched, doc)
		}
	}
	s.mu.RUnlock()

	if opts != nil {
		if opts.Sort != nil {
			keys, err := sortKeys(opts.Sort)
			if err != nil {
				return nil, err
			}
			sortDocuments(matched, keys)
		}
		if opts.Limit != nil && *opts.Limit > 0 && int(*opts.Limit) < len(matched) {
			matched = matched[:*opts.Limit]
		}
	}

	results := make([]T, 0, len(matched))
	for _, doc := range matched {
		item, err := decode[T](doc)
		if err != nil {
			return nil, err
		}
		results = append(results, item)
	}
	return results, nil
}

// FindOneById finds a document by ObjectID
func (s *BaseServiceMemoryImpl[T]) FindOneById(ctx context.Context, id primitive.ObjectID) (T, error) {
	return s.FindOne(ctx, bson.M{"_id": id}, nil)
}

// UpdateById applies data to one document and returns it after the update
func (s *BaseServiceMemoryImpl[T]) UpdateById(ctx context.Context, id primitive.ObjectID, data any) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	update, err := ToUpdateData(data)
	if err != nil {
		return zero, common.ErrInvalidFormat
	}
	if update.Set == nil {
		update.Set = map[string]any{}
	}
	update.Set["updatedAt"] = utility.CurrentTimeInMilli()

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[id]
	if !ok {
		return zero, common.ErrNotFound
	}
	updated, err := applyUpdate(doc, update, false)
	if err != nil {
		return zero, err
	}
	s.docs[id] = updated
	return decode[T](updated)
}

// DeleteById removes one document and reports whether it existed
func (s *BaseServiceMemoryImpl[T]) DeleteById(ctx context.Context, id primitive.ObjectID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[id]; !ok {
		return false, nil
	}
	s.remove(id)
	return true, nil
}

// DeleteMany removes every document matching filter
func (s *BaseServiceMemoryImpl[T]) DeleteMany(ctx context.Context, filter any) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	query, err := filterMap(filter)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var victims []primitive.ObjectID
	for _, id := range s.order {
		ok, err := matchDocument(s.docs[id], query)
		if err != nil {
			return 0, err
		}
		if ok {
			victims = append(victims, id)
		}
	}
	for _, id := range victims {
		s.remove(id)
	}
	return int64(len(victims)), nil
}

// remove deletes id. Callers hold the write lock.
func (s *BaseServiceMemoryImpl[T]) remove(id primitive.ObjectID) {
	delete(s.docs, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Upsert updates the first document matching filter, or inserts one built from the
// filter's equality fields, $setOnInsert and the update
func (s *BaseServiceMemoryImpl[T]) Upsert(ctx context.Context, filter any, data any) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	update, err := ToUpdateData(data)
	if err != nil {
		return zero, common.ErrInvalidFormat
	}
	update = upsertDocument[T](update)

	query, err := filterMap(filter)
	if err != nil {
		return zero, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.order {
		ok, err := matchDocument(s.docs[id], query)
		if err != nil {
			return zero, err
		}
		if ok {
			updated, err := applyUpdate(s.docs[id], update, false)
			if err != nil {
				return zero, err
			}
			s.docs[id] = updated
			return decode[T](updated)
		}
	}

	seed := map[string]any{}
	for k, v := range query {
		if strings.HasPrefix(k, "$") {
			continue
		}
		if m := asMap(v); m != nil {
			if _, hasOp := firstOperator(m); hasOp {
				continue
			}
		}
		seed[k] = v
	}
	created, err := applyUpdate(seed, update, true)
	if err != nil {
		return zero, err
	}
	id, ok := created["_id"].(primitive.ObjectID)
	if !ok {
		id = primitive.NewObjectID()
		created["_id"] = id
	}
	s.docs[id] = created
	s.order = append(s.order, id)
	return decode[T](created)
}

// CountDocuments counts documents matching filter
func (s *BaseServiceMemoryImpl[T]) CountDocuments(ctx context.Context, filter any) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	query, err := filterMap(filter)
	if err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, id := range s.order {
		ok, err := matchDocument(s.docs[id], query)
		if err != nil {
			return 0, err
		}
		if ok {
			n++
		}
	}
	return n, nil
}

// DocumentExists reports whether at least one document matches filter
func (s *BaseServiceMemoryImpl[T]) DocumentExists(ctx context.Context, filter any) (bool, error) {
	n, err := s.CountDocuments(ctx, filter)
	return n > 0, err
}

func decode[T any](doc map[string]any) (T, error) {
	out, err := utility.FromMap[T](doc)
	if err != nil {
		return out, common.NewError(common.ErrCodeDatabase, common.MsgInternalError, common.StatusInternalServerError, err)
	}
	return out, nil
}

func unsupported(what string) error {
	return common.NewError(common.ErrCodeDatabase, common.MsgInternalError, common.StatusInternalServerError,
		fmt.Sprintf("memory store: unsupported %s", what))
}

// filterMap normalizes a filter into a plain map
func filterMap(filter any) (map[string]any, error) {
	if filter == nil {
		return map[string]any{}, nil
	}
	if m := asMap(filter); m != nil {
		return m, nil
	}
	m, err := utility.ToMap(filter)
	if err != nil {
		return nil, unsupported(fmt.Sprintf("filter %T", filter))
	}
	return m, nil
}

// applyUpdate returns a deep copy of doc with update applied
func applyUpdate(doc map[string]any, update *UpdateData, inserting bool) (map[string]any, error) {
	out, err := utility.ToMap(doc)
	if err != nil {
		return nil, common.ErrInvalidFormat
	}
	if inserting {
		for k, v := range update.SetOnInsert {
			setPath(out, k, v)
		}
	}
	for k, v := range update.Set {
		setPath(out, k, v)
	}
	for k := range update.Unset {
		unsetPath(out, k)
	}
	for k, v := range update.Inc {
		cur, _ := lookupPath(out, k)
		sum, err := addNumbers(cur, v)
		if err != nil {
			return nil, err
		}
		setPath(out, k, sum)
	}
	// round trip so stored values never alias caller data
	return utility.ToMap(out)
}

func addNumbers(cur, delta any) (any, error) {
	d, dInt, ok := number(delta)
	if !ok {
		return nil, common.NewError(common.ErrCodeValidationFormat, "$inc requires a number", common.StatusBadRequest, nil)
	}
	if cur == nil {
		return delta, nil
	}
	c, cInt, ok := number(cur)
	if !ok {
		return nil, common.NewError(common.ErrCodeValidationFormat, "$inc applied to a non numeric field", common.StatusBadRequest, nil)
	}
	if cInt && dInt {
		return int64(c) + int64(d), nil
	}
	return c + d, nil
}

// number widens every numeric kind to float64 and reports whether it was an integer kind
func number(v any) (float64, bool, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true, true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), false, true
	}
	return 0, false, false
}

func lookupPath(doc map[string]any, path string) (any, bool) {
	parts := strings.Split(path, ".")
	var cur any = doc
	for _, p := range parts {
		m := asMap(cur)
		if m == nil {
			return nil, false
		}
		v, ok := m[p]
		if !ok {
			return nil, false
		}
		cur = v
	}
	return cur, true
}

func setPath(doc map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	cur := doc
	for _, p := range parts[:len(parts)-1] {
		next := asMap(cur[p])
		if next == nil {
			next = map[string]any{}
		}
		cur[p] = next
		cur = next
	}
	cur[parts[len(parts)-1]] = value
}

func unsetPath(doc map[string]any, path string) {
	parts := strings.Split(path, ".")
	cur := doc
	for _, p := range parts[:len(parts)-1] {
		next := asMap(cur[p])
		if next == nil {
			return
		}
		cur = next
	}
	delete(cur, parts[len(parts)-1])
}

// matchDocument evaluates query against doc
func matchDocument(doc map[string]any, query map[string]any) (bool, error) {
	for key, cond := range query {
		if strings.HasPrefix(key, "$") {
			return false, unsupported("operator " + key)
		}
		value, present := lookupPath(doc, key)
		ok, err := matchField(value, present, cond)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

func matchField(value any, present bool, cond any) (bool, error) {
	ops := asMap(cond)
	if ops == nil {
		return equalsOrContains(value, present, cond), nil
	}
	if _, hasOp := firstOperator(ops); !hasOp {
		return equalsOrContains(value, present, cond), nil
	}

	for op, arg := range ops {
		var ok bool
		var err error
		switch op {
		case "$ne":
			ok = !equalsOrContains(value, present, arg)
		case "$regex":
			pattern, _ := arg.(string)
			flags, _ := ops["$options"].(string)
			ok, err = matchRegex(value, pattern, flags)
		case "$options":
			ok = true
		default:
			return false, unsupported("operator " + op)
		}
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

func matchRegex(value any, pattern, options string) (bool, error) {
	s, ok := value.(string)
	if !ok {
		return false, nil
	}
	flags := ""
	for _, o := range options {
		if o == 'i' || o == 'm' || o == 's' {
			flags += string(o)
		}
	}
	if flags != "" {
		pattern = "(?" + flags + ")" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err.Error())
	}
	return re.MatchString(s), nil
}

// equalsOrContains follows MongoDB equality: null matches a missing field and an array
// field matches when any element is equal
func equalsOrContains(value any, present bool, want any) bool {
	if want == nil {
		return !present || value == nil
	}
	if !present {
		return false
	}
	if equalValues(value, want) {
		return true
	}
	if list, ok := asSlice(value); ok {
		for _, el := range list {
			if equalValues(el, want) {
				return true
			}
		}
	}
	return false
}

func equalValues(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if af, _, ok := number(a); ok {
		if bf, _, ok := number(b); ok {
			return af == bf
		}
		return false
	}
	return reflect.DeepEqual(normalize(a), normalize(b))
}

// normalize makes documents and arrays comparable regardless of their bson container type
func normalize(v any) any {
	if m := asMap(v); m != nil {
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[k] = normalize(val)
		}
		return out
	}
	if list, ok := asSlice(v); ok {
		out := make([]any, len(list))
		for i, val := range list {
			out[i] = normalize(val)
		}
		return out
	}
	return v
}

func asSlice(v any) ([]any, bool) {
	switch t := v.(type) {
	case []any:
		return t, true
	case primitive.A:
		return t, true
	case string, []byte:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// compareValues orders values of the same family. Missing and null sort first.
func compareValues(a, b any) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}
	if af, _, ok := number(a); ok {
		if bf, _, ok := number(b); ok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			}
			return 0
		}
	}
	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return strings.Compare(av, bv)
		}
	case bool:
		if bv, ok := b.(bool); ok {
			switch {
			case av == bv:
				return 0
			case !av:
				return -1
			}
			return 1
		}
	case primitive.ObjectID:
		if bv, ok := b.(primitive.ObjectID); ok {
			return strings.Compare(av.Hex(), bv.Hex())
		}
	case primitive.DateTime:
		if bv, ok := b.(primitive.DateTime); ok {
			return compareValues(int64(av), int64(bv))
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

type sortKey struct {
	field string
	desc  bool
}

func sortKeys(spec any) ([]sortKey, error) {
	var keys []sortKey
	add := func(field string, dir any) error {
		d, _, ok := number(dir)
		if !ok || (d != 1 && d != -1) {
			return unsupported(fmt.Sprintf("sort direction %v", dir))
		}
		keys = append(keys, sortKey{field: field, desc: d < 0})
		return nil
	}

	switch s := spec.(type) {
	case bson.D:
		for _, e := range s {
			if err := add(e.Key, e.Value); err != nil {
				return nil, err
			}
		}
	default:
		m := asMap(spec)
		if m == nil {
			return nil, unsupported(fmt.Sprintf("sort %T", spec))
		}
		// map order is undefined, so only single key maps are deterministic
		names := make([]string, 0, len(m))
		for k := range m {
			names = append(names, k)
		}
		sort.Strings(names)
		for _, k := range names {
			if err := add(k, m[k]); err != nil {
				return nil, err
			}
		}
	}
	return keys, nil
}

func sortDocuments(docs []map[string]any, keys []sortKey) {
	sort.SliceStable(docs, func(i, j int) bool {
		for _, k := range keys {
			a, _ := lookupPath(docs[i], k.field)
			b, _ := lookupPath(docs[j], k.field)
			c := compareValues(a, b)
			if c == 0 {
				continue
			}
			if k.desc {
				return c > 0
			}
			return c < 0
		}
		return false
	})
}
