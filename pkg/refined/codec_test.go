package refined_test

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"math"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/refined/pkg/refined"
)

type account struct {
	Balance refined.NegZDouble `json:"balance"`
	Limit   refined.PosInt     `json:"limit"`
	Ratio   refined.PosFloat   `json:"ratio"`
}

func TestJSON_RoundTrip(t *testing.T) {
	t.Parallel()

	in := account{
		Balance: refined.NegZDoubleKind.EnsuringValid(-12.5),
		Limit:   refined.PosIntKind.EnsuringValid(100),
		Ratio:   refined.PosFloatKind.EnsuringValid(0.25),
	}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"balance":-12.5,"limit":100,"ratio":0.25}`, string(data))

	var out account
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestJSON_Unmarshal(t *testing.T) {
	t.Parallel()

	t.Run("invalid value", func(t *testing.T) {
		var a account
		err := json.Unmarshal([]byte(`{"limit":0}`), &a)
		require.Error(t, err)
		assert.ErrorIs(t, err, refined.ErrInvalidValue)
		assert.Contains(t, err.Error(), "0 was not a valid PosInt")
	})

	t.Run("null keeps current value", func(t *testing.T) {
		a := account{Limit: refined.PosIntKind.EnsuringValid(7)}
		require.NoError(t, json.Unmarshal([]byte(`{"limit":null}`), &a))
		assert.Equal(t, int32(7), a.Limit.Unwrap())
	})

	t.Run("wrong type", func(t *testing.T) {
		var p refined.PosInt
		err := p.UnmarshalJSON([]byte(`"7"`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode PosInt")
	})

	t.Run("fraction into int kind", func(t *testing.T) {
		var p refined.PosLong
		assert.Error(t, p.UnmarshalJSON([]byte(`1.5`)))
	})

	t.Run("negative zero", func(t *testing.T) {
		var n refined.NegZDouble
		require.NoError(t, n.UnmarshalJSON([]byte(`-0`)))
		assert.True(t, same(negZero64, n.Unwrap()))

		var p refined.PosDouble
		assert.ErrorIs(t, p.UnmarshalJSON([]byte(`-0`)), refined.ErrInvalidValue)
	})

	t.Run("strings other than infinities", func(t *testing.T) {
		var d refined.PosDouble
		err := d.UnmarshalJSON([]byte(`"NaN"`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode PosDouble")

		var i refined.PosInt
		assert.Error(t, i.UnmarshalJSON([]byte(`"+Inf"`)), "int kinds have no infinity")
	})
}

func TestJSON_Infinities(t *testing.T) {
	t.Parallel()

	type bounds struct {
		Low  refined.NegFloat  `json:"low"`
		High refined.PosDouble `json:"high"`
	}
	in := bounds{Low: refined.NegFloatKind.MinValue(), High: refined.PosDoubleKind.MaxValue()}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"low":"-Inf","high":"+Inf"}`, string(data))

	var out bounds
	require.NoError(t, json.Unmarshal(data, &out))
	assert.True(t, out.Low.IsNegInfinity())
	assert.True(t, out.High.IsPosInfinity())

	var p refined.PosDouble
	err = p.UnmarshalJSON([]byte(`"-Inf"`))
	assert.ErrorIs(t, err, refined.ErrInvalidValue, "-Inf is not positive")
}

func TestText(t *testing.T) {
	t.Parallel()

	text, err := refined.NegLongKind.EnsuringValid(-42).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "-42", string(text))

	text, err = refined.PosDoubleKind.MaxValue().MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "+Inf", string(text))

	var n refined.NegLong
	require.NoError(t, n.UnmarshalText([]byte(" -9 ")))
	assert.Equal(t, int64(-9), n.Unwrap())

	err = n.UnmarshalText([]byte("9"))
	assert.ErrorIs(t, err, refined.ErrInvalidValue)
	assert.Equal(t, int64(-9), n.Unwrap(), "receiver is unchanged")

	err = n.UnmarshalText([]byte("minus nine"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse NegLong")

	var i refined.PosInt
	assert.Error(t, i.UnmarshalText([]byte("4294967296")), "out of int32 range")

	var f refined.PosDouble
	require.NoError(t, f.UnmarshalText([]byte("+Inf")))
	assert.True(t, f.IsPosInfinity())
	assert.ErrorIs(t, f.UnmarshalText([]byte("NaN")), refined.ErrInvalidValue)
}

func TestSQL_Scan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		src     any
		want    int64
		wantErr error
	}{
		{name: "int64", src: int64(5), want: 5},
		{name: "float64", src: float64(6), want: 6},
		{name: "bytes", src: []byte("7"), want: 7},
		{name: "string", src: "8", want: 8},
		{name: "null", src: nil, wantErr: refined.ErrNullValue},
		{name: "invalid", src: int64(0), wantErr: refined.ErrInvalidValue},
		{name: "invalid text", src: "-1", wantErr: refined.ErrInvalidValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p refined.PosLong
			err := p.Scan(tt.src)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Unwrap())
		})
	}
}

func TestSQL_ScanRejects(t *testing.T) {
	t.Parallel()

	var i refined.PosInt
	err := i.Scan(int64(math.MaxInt32) + 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be represented exactly as PosInt")

	assert.Error(t, i.Scan(1.5), "fraction into int kind")
	assert.Error(t, i.Scan(true), "unsupported source type")

	var f refined.PosFloat
	assert.Error(t, f.Scan(0.1), "0.1 has no exact float32")
	require.NoError(t, f.Scan(0.5))
	assert.Equal(t, float32(0.5), f.Unwrap())
}

func TestSQL_ScanIntegerIntoFloat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		scan  func(src any) error
		src   int64
		exact bool
	}{
		{"float32 holds 2^24", new(refined.PosFloat).Scan, 1 << 24, true},
		{"float32 rounds 2^24+1", new(refined.PosFloat).Scan, 1<<24 + 1, false},
		{"float64 holds 2^53", new(refined.PosDouble).Scan, 1 << 53, true},
		{"float64 rounds 2^53+1", new(refined.PosDouble).Scan, 1<<53 + 1, false},
		{"float64 rounds max int64", new(refined.NonZeroDouble).Scan, math.MaxInt64, false},
		{"float64 holds min int64", new(refined.NegDouble).Scan, math.MinInt64, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.scan(tt.src)
			if tt.exact {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), "cannot be represented exactly")
		})
	}

	var f refined.PosFloat
	require.NoError(t, f.Scan(int64(3)))
	assert.Error(t, f.Scan(int64(16777217)))
	assert.Equal(t, float32(3), f.Unwrap(), "receiver is unchanged")
}

func TestSQL_Value(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value driver.Valuer
		want  driver.Value
	}{
		{"int", refined.NegIntKind.EnsuringValid(-3), int64(-3)},
		{"long", refined.PosZLong{}, int64(0)},
		{"float", refined.PosFloatKind.EnsuringValid(0.5), 0.5},
		{"double", refined.NonZeroDoubleKind.EnsuringValid(-2.25), -2.25},
	}
	for _, tt := range tests {
		got, err := tt.value.Value()
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}
}

func TestSQL_Null(t *testing.T) {
	t.Parallel()

	var n sql.Null[refined.PosInt]
	require.NoError(t, n.Scan(nil))
	assert.False(t, n.Valid)

	require.NoError(t, n.Scan(int64(3)))
	assert.True(t, n.Valid)
	assert.Equal(t, int32(3), n.V.Unwrap())
}

func TestPgx_Int64(t *testing.T) {
	t.Parallel()

	var n refined.NegZLong
	require.NoError(t, n.ScanInt64(pgtype.Int8{Int64: -4, Valid: true}))
	assert.Equal(t, int64(-4), n.Unwrap())

	assert.ErrorIs(t, n.ScanInt64(pgtype.Int8{}), refined.ErrNullValue)
	assert.ErrorIs(t, n.ScanInt64(pgtype.Int8{Int64: 1, Valid: true}), refined.ErrInvalidValue)
	assert.Equal(t, int64(-4), n.Unwrap())

	v, err := refined.PosIntKind.EnsuringValid(9).Int64Value()
	require.NoError(t, err)
	assert.Equal(t, pgtype.Int8{Int64: 9, Valid: true}, v)
}

func TestPgx_Float64(t *testing.T) {
	t.Parallel()

	var p refined.PosDouble
	require.NoError(t, p.ScanFloat64(pgtype.Float8{Float64: 2.5, Valid: true}))
	assert.Equal(t, 2.5, p.Unwrap())

	assert.ErrorIs(t, p.ScanFloat64(pgtype.Float8{}), refined.ErrNullValue)
	assert.ErrorIs(t, p.ScanFloat64(pgtype.Float8{Float64: -1, Valid: true}), refined.ErrInvalidValue)
	assert.ErrorIs(t, p.ScanFloat64(pgtype.Float8{Float64: math.NaN(), Valid: true}), refined.ErrInvalidValue)

	v, err := refined.NegFloatKind.EnsuringValid(-0.75).Float64Value()
	require.NoError(t, err)
	assert.Equal(t, pgtype.Float8{Float64: -0.75, Valid: true}, v)
}
