package chain

// ContractAddress is the enable contract every transaction is sent to. It is
// the same on all supported networks.
const ContractAddress = "0x8B173c2E4C84b4bdD8c656F3d47Bc4259594Bd48"

// EnableSelector is the 4-byte selector every calldata entry in the table
// starts with. The function name behind it is not known.
const EnableSelector = "0xeb0835bf"
