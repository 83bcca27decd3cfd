package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// Hand-written MUS serializers for catalog persistence. Payload is a
// runtime-only back-reference and is not persisted.
var (
	MetaEntryMUS    = metaEntryMUS{}
	AmountMUS       = amountMUS{}
	TextFieldMUS    = textFieldMUS{}
	NumericFieldMUS = numericFieldMUS{}
	ItemMUS         = itemMUS{}
)

type metaEntryMUS struct{}

func (metaEntryMUS) Marshal(v MetaEntry, bs []byte) (n int) {
	n = ord.String.Marshal(v.Key, bs)
	n += ord.String.Marshal(v.Value, bs[n:])
	return n
}

func (metaEntryMUS) Unmarshal(bs []byte) (v MetaEntry, n int, err error) {
	v.Key, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Value, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (metaEntryMUS) Size(v MetaEntry) int {
	return ord.String.Size(v.Key) + ord.String.Size(v.Value)
}

type amountMUS struct{}

func (amountMUS) Marshal(v Amount, bs []byte) (n int) {
	n = raw.Float64.Marshal(v.Value, bs)
	n += ord.String.Marshal(v.Label, bs[n:])
	n += ord.String.Marshal(v.Currency, bs[n:])
	return n
}

func (amountMUS) Unmarshal(bs []byte) (v Amount, n int, err error) {
	v.Value, n, err = raw.Float64.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Label, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Currency, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (amountMUS) Size(v Amount) int {
	return raw.Float64.Size(v.Value) + ord.String.Size(v.Label) + ord.String.Size(v.Currency)
}

type textFieldMUS struct{}

func (textFieldMUS) Marshal(v TextField, bs []byte) (n int) {
	n = ord.String.Marshal(v.Value, bs)
	n += varint.Int.Marshal(v.Weight, bs[n:])
	n += ord.Bool.Marshal(v.IsKey, bs[n:])
	return n
}

func (textFieldMUS) Unmarshal(bs []byte) (v TextField, n int, err error) {
	v.Value, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Weight, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.IsKey, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	return
}

func (textFieldMUS) Size(v TextField) int {
	return ord.String.Size(v.Value) + varint.Int.Size(v.Weight) + ord.Bool.Size(v.IsKey)
}

type numericFieldMUS struct{}

func (numericFieldMUS) Marshal(v NumericField, bs []byte) (n int) {
	n = raw.Float64.Marshal(v.Value, bs)
	n += varint.Int.Marshal(v.Weight, bs[n:])
	return n
}

func (numericFieldMUS) Unmarshal(bs []byte) (v NumericField, n int, err error) {
	v.Value, n, err = raw.Float64.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Weight, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	return
}

func (numericFieldMUS) Size(v NumericField) int {
	return raw.Float64.Size(v.Value) + varint.Int.Size(v.Weight)
}

type itemMUS struct{}

func (itemMUS) Marshal(v Item, bs []byte) (n int) {
	n = ord.String.Marshal(v.ID, bs)
	n += ord.String.Marshal(v.Label, bs[n:])
	n += ord.String.Marshal(v.Secondary, bs[n:])
	n += ord.String.Marshal(v.Description, bs[n:])
	n += ord.String.Marshal(v.Haystack, bs[n:])
	n += varint.PositiveInt.Marshal(len(v.Meta), bs[n:])
	for _, e := range v.Meta {
		n += MetaEntryMUS.Marshal(e, bs[n:])
	}
	hasAmount := v.Amount != nil
	n += ord.Bool.Marshal(hasAmount, bs[n:])
	if hasAmount {
		n += AmountMUS.Marshal(*v.Amount, bs[n:])
	}
	n += varint.PositiveInt.Marshal(len(v.Keywords), bs[n:])
	for _, f := range v.Keywords {
		n += TextFieldMUS.Marshal(f, bs[n:])
	}
	n += varint.PositiveInt.Marshal(len(v.Numerics), bs[n:])
	for _, f := range v.Numerics {
		n += NumericFieldMUS.Marshal(f, bs[n:])
	}
	return n
}

func (itemMUS) Unmarshal(bs []byte) (v Item, n int, err error) {
	var n1 int
	v.ID, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	v.Label, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Secondary, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Description, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Haystack, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}

	var count int
	count, n1, err = varint.PositiveInt.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	if count > 0 {
		v.Meta = make([]MetaEntry, count)
		for i := 0; i < count; i++ {
			v.Meta[i], n1, err = MetaEntryMUS.Unmarshal(bs[n:])
			n += n1
			if err != nil {
				return
			}
		}
	}

	var hasAmount bool
	hasAmount, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	if hasAmount {
		var amount Amount
		amount, n1, err = AmountMUS.Unmarshal(bs[n:])
		n += n1
		if err != nil {
			return
		}
		v.Amount = &amount
	}

	count, n1, err = varint.PositiveInt.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	if count > 0 {
		v.Keywords = make([]TextField, count)
		for i := 0; i < count; i++ {
			v.Keywords[i], n1, err = TextFieldMUS.Unmarshal(bs[n:])
			n += n1
			if err != nil {
				return
			}
		}
	}

	count, n1, err = varint.PositiveInt.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	if count > 0 {
		v.Numerics = make([]NumericField, count)
		for i := 0; i < count; i++ {
			v.Numerics[i], n1, err = NumericFieldMUS.Unmarshal(bs[n:])
			n += n1
			if err != nil {
				return
			}
		}
	}
	return
}

func (itemMUS) Size(v Item) int {
	size := ord.String.Size(v.ID) +
		ord.String.Size(v.Label) +
		ord.String.Size(v.Secondary) +
		ord.String.Size(v.Description) +
		ord.String.Size(v.Haystack)
	size += varint.PositiveInt.Size(len(v.Meta))
	for _, e := range v.Meta {
		size += MetaEntryMUS.Size(e)
	}
	hasAmount := v.Amount != nil
	size += ord.Bool.Size(hasAmount)
	if hasAmount {
		size += AmountMUS.Size(*v.Amount)
	}
	size += varint.PositiveInt.Size(len(v.Keywords))
	for _, f := range v.Keywords {
		size += TextFieldMUS.Size(f)
	}
	size += varint.PositiveInt.Size(len(v.Numerics))
	for _, f := range v.Numerics {
		size += NumericFieldMUS.Size(f)
	}
	return size
}
