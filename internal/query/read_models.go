package query

// Re-export read models from readmodel package for backward compatibility
import "github.com/example/sneakfits/internal/readmodel"

type ShoeReadModel = readmodel.ShoeReadModel
type CommissionReadModel = readmodel.CommissionReadModel
