package codec

import (
	"github.com/celer-network/cosmos-sidecar/types"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers of cosmos.tx.v1beta1.TxRaw, AuthInfo and Fee.
const (
	txRawAuthInfoField protowire.Number = 2

	authInfoFeeField protowire.Number = 2

	feeGasLimitField protowire.Number = 2
	feePayerField    protowire.Number = 3
	feeGranterField  protowire.Number = 4
)

type Fee struct {
	GasLimit uint64
	Payer    string
	Granter  string
}

// DecodeTxFee reads the fee section out of protobuf encoded TxRaw bytes
// without decoding the messages or signatures.
func DecodeTxFee(rawTx []byte) (Fee, error) {
	authInfo, err := lastBytesField(rawTx, txRawAuthInfoField)
	if err != nil {
		return Fee{}, types.NewDecodeError("tx.auth_info", err)
	}
	feeBytes, err := lastBytesField(authInfo, authInfoFeeField)
	if err != nil {
		return Fee{}, types.NewDecodeError("tx.auth_info.fee", err)
	}

	var fee Fee
	b := feeBytes
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return Fee{}, types.NewDecodeError("tx.auth_info.fee", protowire.ParseError(n))
		}
		b = b[n:]
		switch {
		case num == feeGasLimitField && typ == protowire.VarintType:
			v, m := protowire.ConsumeVarint(b)
			if m < 0 {
				return Fee{}, types.NewDecodeError("tx.auth_info.fee.gas_limit", protowire.ParseError(m))
			}
			fee.GasLimit = v
			b = b[m:]
		case (num == feePayerField || num == feeGranterField) && typ == protowire.BytesType:
			v, m := protowire.ConsumeString(b)
			if m < 0 {
				return Fee{}, types.NewDecodeError("tx.auth_info.fee", protowire.ParseError(m))
			}
			if num == feePayerField {
				fee.Payer = v
			} else {
				fee.Granter = v
			}
			b = b[m:]
		default:
			m := protowire.ConsumeFieldValue(num, typ, b)
			if m < 0 {
				return Fee{}, types.NewDecodeError("tx.auth_info.fee", protowire.ParseError(m))
			}
			b = b[m:]
		}
	}
	return fee, nil
}

// lastBytesField returns the last occurrence of a length-delimited field, which
// is what a protobuf decoder would keep for a non-repeated message field.
func lastBytesField(b []byte, field protowire.Number) ([]byte, error) {
	var found []byte
	seen := false
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, protowire.ParseError(n)
		}
		b = b[n:]
		if num == field && typ == protowire.BytesType {
			v, m := protowire.ConsumeBytes(b)
			if m < 0 {
				return nil, protowire.ParseError(m)
			}
			found, seen = v, true
			b = b[m:]
			continue
		}
		m := protowire.ConsumeFieldValue(num, typ, b)
		if m < 0 {
			return nil, protowire.ParseError(m)
		}
		b = b[m:]
	}
	if !seen {
		return nil, errors.Errorf("field %d not present", field)
	}
	return found, nil
}
