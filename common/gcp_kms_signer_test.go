package common

import (
	"context"
	"crypto/x509/pkix"
	"encoding/asn1"
	"encoding/pem"
	"math/big"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	kms "cloud.google.com/go/kms/apiv1"
	"cloud.google.com/go/kms/apiv1/kmspb"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	gax "github.com/googleapis/gax-go/v2"
)

// MockGCPKeyManagementClient is a mock implementation of GCPKeyManagementClient
type MockGCPKeyManagementClient struct {
	mock.Mock
}

func (m *MockGCPKeyManagementClient) Close() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockGCPKeyManagementClient) GetPublicKey(ctx context.Context, req *kmspb.GetPublicKeyRequest, opts ...gax.CallOption) (*kmspb.PublicKey, error) {
	args := m.Called(ctx, req, opts)
	return args.Get(0).(*kmspb.PublicKey), args.Error(1)
}

func (m *MockGCPKeyManagementClient) AsymmetricSign(ctx context.Context, req *kmspb.AsymmetricSignRequest, opts ...gax.CallOption) (*kmspb.AsymmetricSignResponse, error) {
	args := m.Called(ctx, req, opts)
	return args.Get(0).(*kmspb.AsymmetricSignResponse), args.Error(1)
}

func (m *MockGCPKeyManagementClient) GetCryptoKeyVersion(ctx context.Context, req *kmspb.GetCryptoKeyVersionRequest, opts ...gax.CallOption) (*kmspb.CryptoKeyVersion, error) {
	args := m.Called(ctx, req, opts)
	return args.Get(0).(*kmspb.CryptoKeyVersion), args.Error(1)
}

const testKMSPem = "-----BEGIN PUBLIC KEY-----\nMFYwEAYHKoZIzj0CAQYFK4EEAAoDQgAEWf5LaoaCQYy4bfVxwKNrBvGzfmdgmFAJ\nWZwx14PGzKxssHukWefUlJ0SsXj4RogC6/fZMgB+RrAvx6K/kHYf1g==\n-----END PUBLIC KEY-----"

func mockEthASN1Signature() []byte {
	r, _ := new(big.Int).SetString("81318ab2232fbc4fd547d968ff554e9bd791543a1785fe075338693d946cb6ec", 16)
	s, _ := new(big.Int).SetString("3c7829539dc8fd5e3b6e4dc9b3d6c5c9628bcb72d2639df18e6078af0273cf98", 16)
	return asn1Bytes(r, s)
}

func mockPublicKey() []byte {
	keyHex := "0466673eea9ed9e7c2e838e566cc3424505d1b07be6a415c5e62cb56e69f9543da0104d2c81e9f7512687f11d65b714d852139680ff08923b4d9696f2960271f15"
	return common.Hex2Bytes(keyHex)
}

func asn1Bytes(r, s *big.Int) []byte {
	signature, _ := asn1.Marshal(struct {
		R, S *big.Int
	}{R: r, S: s})
	return signature
}

// Unit tests for GcpKmsSigner
func TestNewGcpKmsSigner(t *testing.T) {
	mockClient := new(MockGCPKeyManagementClient)
	NewGCPKeyManagementClient = func(ctx context.Context) (GCPKeyManagementClient, error) {
		return mockClient, nil
	}

	keyName := "test-key"
	expectedKeyVersion := &kmspb.CryptoKeyVersion{
		Algorithm: kmspb.CryptoKeyVersion_EC_SIGN_SECP256K1_SHA256,
	}
	mockClient.On("GetCryptoKeyVersion", mock.Anything, &kmspb.GetCryptoKeyVersionRequest{Name: keyName}, mock.Anything).Return(expectedKeyVersion, nil)

	expectedPublicKey := &kmspb.PublicKey{
		Pem: testKMSPem,
	}
	mockClient.On("GetPublicKey", mock.Anything, &kmspb.GetPublicKeyRequest{Name: keyName}, mock.Anything).Return(expectedPublicKey, nil)

	signer, err := NewGcpKmsSigner(keyName)
	assert.NoError(t, err)
	assert.NotNil(t, signer)
	assert.Equal(t, common.HexToAddress("0xE14fe42d9Cf3c39C27E1C1cA3dAa033C43ED4D88"), signer.EthAddress())

	mockClient.AssertExpectations(t)
}

func TestDecodeKMSPublicKey(t *testing.T) {
	t.Run("Uncompressed Point", func(t *testing.T) {
		point, err := decodeKMSPublicKey(testKMSPem)
		require.NoError(t, err)
		assert.Len(t, point, 65)
		assert.Equal(t, byte(0x04), point[0])
		assert.Equal(t, common.HexToAddress("0xE14fe42d9Cf3c39C27E1C1cA3dAa033C43ED4D88"), addressOf(point))
	})

	t.Run("No Pem Block", func(t *testing.T) {
		_, err := decodeKMSPublicKey("not a key")
		assert.ErrorContains(t, err, "no PEM block")
	})

	t.Run("Not Ecdsa", func(t *testing.T) {
		der, err := asn1.Marshal(subjectPublicKeyInfo{
			Algorithm: pkix.AlgorithmIdentifier{Algorithm: asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 1}},
			PublicKey: asn1.BitString{Bytes: mockPublicKey(), BitLength: 8 * len(mockPublicKey())},
		})
		require.NoError(t, err)
		text := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})

		_, err = decodeKMSPublicKey(string(text))
		assert.ErrorContains(t, err, "is not ECDSA")
	})

	t.Run("Truncated Point", func(t *testing.T) {
		der, err := asn1.Marshal(subjectPublicKeyInfo{
			Algorithm: pkix.AlgorithmIdentifier{Algorithm: oidPublicKeyECDSA},
			PublicKey: asn1.BitString{Bytes: []byte{0x04, 0x01}, BitLength: 16},
		})
		require.NoError(t, err)
		text := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})

		_, err = decodeKMSPublicKey(string(text))
		assert.Error(t, err)
	})
}

func TestAddressOf(t *testing.T) {
	addr := addressOf(mockPublicKey())
	assert.Equal(t, common.HexToAddress("0x14BFf3BDb55E171Dc5af4B0F6F779752bC146C6E"), addr)
}

func TestDecodeDERSignature(t *testing.T) {
	r, _ := new(big.Int).SetString("81318ab2232fbc4fd547d968ff554e9bd791543a1785fe075338693d946cb6ec", 16)
	s, _ := new(big.Int).SetString("3c7829539dc8fd5e3b6e4dc9b3d6c5c9628bcb72d2639df18e6078af0273cf98", 16)
	highS := new(big.Int).Sub(crypto.S256().Params().N, s)

	t.Run("Low S Kept", func(t *testing.T) {
		gotR, gotS, err := decodeDERSignature(asn1Bytes(r, s))
		require.NoError(t, err)
		assert.Equal(t, r.FillBytes(make([]byte, 32)), gotR[:])
		assert.Equal(t, s.FillBytes(make([]byte, 32)), gotS[:])
	})

	t.Run("High S Normalized", func(t *testing.T) {
		_, gotS, err := decodeDERSignature(asn1Bytes(r, highS))
		require.NoError(t, err)
		assert.Equal(t, s.FillBytes(make([]byte, 32)), gotS[:])
	})

	t.Run("Short R Padded", func(t *testing.T) {
		gotR, _, err := decodeDERSignature(asn1Bytes(big.NewInt(7), s))
		require.NoError(t, err)
		assert.Equal(t, byte(7), gotR[31])
		assert.Equal(t, make([]byte, 31), gotR[:31])
	})

	t.Run("Out Of Range", func(t *testing.T) {
		_, _, err := decodeDERSignature(asn1Bytes(big.NewInt(0), s))
		assert.Error(t, err)

		tooLong := new(big.Int).Lsh(big.NewInt(1), 256)
		_, _, err = decodeDERSignature(asn1Bytes(r, tooLong))
		assert.Error(t, err)
	})

	t.Run("Not Der", func(t *testing.T) {
		_, _, err := decodeDERSignature([]byte{0x01, 0x02})
		assert.Error(t, err)
	})
}

func TestNewGcpKmsSigner_WrongAlgorithm(t *testing.T) {
	mockClient := new(MockGCPKeyManagementClient)
	NewGCPKeyManagementClient = func(ctx context.Context) (GCPKeyManagementClient, error) {
		return mockClient, nil
	}

	keyName := "test-key"
	mockClient.On("GetCryptoKeyVersion", mock.Anything, &kmspb.GetCryptoKeyVersionRequest{Name: keyName}, mock.Anything).Return(&kmspb.CryptoKeyVersion{
		Algorithm: kmspb.CryptoKeyVersion_EC_SIGN_P256_SHA256,
	}, nil)

	signer, err := NewGcpKmsSigner(keyName)
	assert.Error(t, err)
	assert.Nil(t, signer)
}

func TestGcpKmsSigner_SignHash(t *testing.T) {
	mockClient := new(MockGCPKeyManagementClient)
	keyName := "test-key"
	ethAddress := common.HexToAddress("0x14BFf3BDb55E171Dc5af4B0F6F779752bC146C6E")

	signer := &GcpKmsSigner{
		client:     mockClient,
		keyName:    keyName,
		ethAddress: ethAddress,
	}

	hash := crypto.Keccak256Hash([]byte("example transaction data"))
	expectedSignature := &kmspb.AsymmetricSignResponse{
		Signature: mockEthASN1Signature(),
	}
	mockClient.On("AsymmetricSign", mock.Anything, mock.Anything, mock.Anything).Return(expectedSignature, nil)

	sig, err := signer.SignHash(hash)
	assert.NoError(t, err)
	assert.Len(t, sig, 65)
	assert.Less(t, sig[64], byte(2))

	pubKey, err := crypto.SigToPub(hash[:], sig)
	assert.NoError(t, err)
	assert.Equal(t, ethAddress, crypto.PubkeyToAddress(*pubKey))

	mockClient.AssertExpectations(t)
}

func TestGcpKmsSigner_SignHashHighS(t *testing.T) {
	mockClient := new(MockGCPKeyManagementClient)
	ethAddress := common.HexToAddress("0x14BFf3BDb55E171Dc5af4B0F6F779752bC146C6E")
	signer := &GcpKmsSigner{
		client:     mockClient,
		keyName:    "test-key",
		ethAddress: ethAddress,
	}

	r, _ := new(big.Int).SetString("81318ab2232fbc4fd547d968ff554e9bd791543a1785fe075338693d946cb6ec", 16)
	s, _ := new(big.Int).SetString("3c7829539dc8fd5e3b6e4dc9b3d6c5c9628bcb72d2639df18e6078af0273cf98", 16)
	highS := new(big.Int).Sub(crypto.S256().Params().N, s)
	mockClient.On("AsymmetricSign", mock.Anything, mock.Anything, mock.Anything).Return(&kmspb.AsymmetricSignResponse{
		Signature: asn1Bytes(r, highS),
	}, nil)

	hash := crypto.Keccak256Hash([]byte("example transaction data"))
	sig, err := signer.SignHash(hash)
	require.NoError(t, err)
	assert.Equal(t, s.FillBytes(make([]byte, 32)), sig[32:64])

	pubKey, err := crypto.SigToPub(hash[:], sig)
	require.NoError(t, err)
	assert.Equal(t, ethAddress, crypto.PubkeyToAddress(*pubKey))
}

func TestGcpKmsSigner_SignHashAddressMismatch(t *testing.T) {
	mockClient := new(MockGCPKeyManagementClient)

	signer := &GcpKmsSigner{
		client:     mockClient,
		keyName:    "test-key",
		ethAddress: common.HexToAddress(ZeroAddress),
	}

	mockClient.On("AsymmetricSign", mock.Anything, mock.Anything, mock.Anything).Return(&kmspb.AsymmetricSignResponse{
		Signature: mockEthASN1Signature(),
	}, nil)

	sig, err := signer.SignHash(crypto.Keccak256Hash([]byte("example transaction data")))
	assert.Error(t, err)
	assert.Nil(t, sig)
}

func TestGcpKmsSigner_Destroy(t *testing.T) {
	mockClient := new(MockGCPKeyManagementClient)
	keyName := "test-key"

	signer := &GcpKmsSigner{
		client:  mockClient,
		keyName: keyName,
	}

	mockClient.On("Close").Return(nil)

	signer.Destroy()
	mockClient.AssertExpectations(t)
}

func TestGcpKmsSigner_WithGCPKMS(t *testing.T) {

	keyName := os.Getenv("GCP_KMS_KEY_NAME")
	if keyName == "" {
		t.Skip("GCP KMS key name not set")
	}
	credentails := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	if credentails == "" {
		t.Skip("GCP credentials not set")
	}

	NewGCPKeyManagementClient = func(ctx context.Context) (GCPKeyManagementClient, error) {
		return kms.NewKeyManagementClient(ctx)
	}

	signer, err := NewGcpKmsSigner(keyName)
	assert.NoError(t, err)

	hash := crypto.Keccak256Hash([]byte("example transaction data"))
	sig, err := signer.SignHash(hash)
	assert.NoError(t, err)

	pubKey, err := crypto.SigToPub(hash[:], sig)
	assert.NoError(t, err)
	assert.Equal(t, signer.EthAddress(), crypto.PubkeyToAddress(*pubKey))
}
