package common

import (
	"bytes"
	"crypto/x509/pkix"
	"encoding/asn1"
	"encoding/pem"
	"errors"
	"fmt"
	"math/big"

	btcecdsa "github.com/btcsuite/btcd/btcec/v2/ecdsa"
	dcrecSecp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// subjectPublicKeyInfo is the DER body of a PEM "PUBLIC KEY" block.
type subjectPublicKeyInfo struct {
	Algorithm pkix.AlgorithmIdentifier
	PublicKey asn1.BitString
}

type derSignature struct {
	R, S *big.Int
}

// decodeKMSPublicKey returns the uncompressed secp256k1 point held in a
// PEM encoded public key.
func decodeKMSPublicKey(pemText string) ([]byte, error) {
	block, _ := pem.Decode([]byte(pemText))
	if block == nil {
		return nil, fmt.Errorf("no PEM block in %.130q", pemText)
	}

	var info subjectPublicKeyInfo
	rest, err := asn1.Unmarshal(block.Bytes, &info)
	if err != nil {
		return nil, fmt.Errorf("decoding %s block: %w", block.Type, err)
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("%d trailing bytes after %s block", len(rest), block.Type)
	}
	if !info.Algorithm.Algorithm.Equal(oidPublicKeyECDSA) {
		return nil, fmt.Errorf("key algorithm %s is not ECDSA", info.Algorithm.Algorithm)
	}

	point := info.PublicKey.Bytes
	key, err := dcrecSecp256k1.ParsePubKey(point)
	if err != nil {
		return nil, fmt.Errorf("parsing secp256k1 point: %w", err)
	}
	if !bytes.Equal(key.SerializeUncompressed(), point) {
		return nil, errors.New("public key is not an uncompressed secp256k1 point")
	}
	return point, nil
}

// addressOf derives the account address of an uncompressed point.
func addressOf(point []byte) common.Address {
	return common.BytesToAddress(crypto.Keccak256(point[1:])[12:])
}

func scalarInRange(v *big.Int) bool {
	return v != nil && v.Sign() > 0 && v.BitLen() <= 256
}

// decodeDERSignature returns r and s as 32-byte big endian values, with s
// moved into the lower half of the curve order.
func decodeDERSignature(der []byte) (r [32]byte, s [32]byte, err error) {
	var sig derSignature
	if _, err = asn1.Unmarshal(der, &sig); err != nil {
		return r, s, fmt.Errorf("decoding DER signature: %w", err)
	}
	if !scalarInRange(sig.R) || !scalarInRange(sig.S) {
		return r, s, errors.New("signature component out of range")
	}

	sig.R.FillBytes(r[:])

	// KMS does not normalize s; transactions require the lower half
	var scalar dcrecSecp256k1.ModNScalar
	scalar.SetByteSlice(sig.S.Bytes())
	if scalar.IsOverHalfOrder() {
		scalar.Negate()
	}
	s = scalar.Bytes()
	return r, s, nil
}

// recoverableSignature picks the recovery id under which (r, s) recovers
// signer and returns the signature as [R || S || V].
func recoverableSignature(hash common.Hash, r, s [32]byte, signer common.Address) ([]byte, error) {
	// compact form leads with the header byte
	compact := make([]byte, 65)
	copy(compact[1:33], r[:])
	copy(compact[33:], s[:])

	var recoverErr error
	for v := byte(0); v < 2; v++ {
		compact[0] = 27 + v
		key, _, err := btcecdsa.RecoverCompact(compact, hash[:])
		if err != nil {
			recoverErr = err
			continue
		}
		if addressOf(key.SerializeUncompressed()) != signer {
			continue
		}

		sig := make([]byte, 65)
		copy(sig, compact[1:])
		sig[64] = v

		recovered, err := crypto.SigToPub(hash[:], sig)
		if err != nil {
			return nil, fmt.Errorf("verifying recovered signature: %w", err)
		}
		if crypto.PubkeyToAddress(*recovered) != signer {
			return nil, errors.New("recovered address mismatch")
		}
		return sig, nil
	}

	if recoverErr != nil {
		return nil, fmt.Errorf("signature address recovery failed: %w", recoverErr)
	}
	return nil, errors.New("signature address mismatch")
}
