package allocation_test

import (
	"testing"

	"github.com/muhammadheryan/fulfillment/application/allocation"
	"github.com/muhammadheryan/fulfillment/constant"
	"github.com/stretchr/testify/assert"
)

func TestBasePart(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "no hyphens", input: "ABC", want: "ABC"},
		{name: "two hyphens", input: "ABC-1-2", want: "ABC-1-2"},
		{name: "three hyphens", input: "ABC-1-2-7", want: "ABC-1-2"},
		{name: "four hyphens", input: "Costum-PC-A1-2-1", want: "Costum-PC-A1"},
		{name: "empty", input: "", want: ""},
		{name: "leading hyphens", input: "---x", want: "--"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, allocation.BasePart(tt.input))
		})
	}
}

func TestBasePart_Idempotent(t *testing.T) {
	inputs := []string{"", "ABC", "ABC-1-2", "ABC-1-2-7", "Costum-PC-A1-2-1", "a-b-c-d-e-f"}
	for _, s := range inputs {
		base := allocation.BasePart(s)
		assert.Equal(t, base, allocation.BasePart(base), "base part of %q must be a fixed point", s)
	}
}

func TestValidateMOSerial(t *testing.T) {
	tests := []struct {
		name    string
		moRef   string
		serial  string
		wantErr constant.ErrorType
	}{
		{name: "serial equals reference", moRef: "ABC-1-2", serial: "ABC-1-2"},
		{name: "unit index suffix", moRef: "ABC-1-2", serial: "ABC-1-2-7"},
		{name: "multi digit unit index", moRef: "ABC-1-2", serial: "ABC-1-2-12"},
		{name: "reference with three hyphens", moRef: "Costum-PC-A1-2", serial: "Costum-PC-A1-2-1"},
		{name: "leading zero index rejected", moRef: "ABC-1-2", serial: "ABC-1-2-07", wantErr: constant.ErrSerialSuffixInvalid},
		{name: "zero index rejected", moRef: "ABC-1-2", serial: "ABC-1-2-0", wantErr: constant.ErrSerialSuffixInvalid},
		{name: "base mismatch", moRef: "ABC-1-2", serial: "XYZ-9-9-1", wantErr: constant.ErrSerialBaseMismatch},
		{name: "non numeric suffix", moRef: "ABC-1-2", serial: "ABC-1-2-x", wantErr: constant.ErrSerialSuffixInvalid},
		{name: "double suffix rejected", moRef: "ABC-1-2", serial: "ABC-1-2-7-3", wantErr: constant.ErrSerialSuffixInvalid},
		{name: "shared base but different tail", moRef: "Costum-PC-A1-2", serial: "Costum-PC-A1-9-1", wantErr: constant.ErrSerialSuffixInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := allocation.ValidateMOSerial(tt.moRef, tt.serial)
			if tt.wantErr == constant.Successful {
				assert.Nil(t, err)
				return
			}
			if assert.NotNil(t, err) {
				assert.Equal(t, tt.wantErr, err.Type)
			}
		})
	}
}
