package shopify

// GraphQL documents sent to the Admin API. Pagination reads the cursor off
// the last returned edge, so the products query does not request
// pageInfo.endCursor.

const productsQuery = `
query products($first: Int!, $after: String) {
  products(first: $first, after: $after) {
    edges {
      cursor
      node {
        id
        title
        options {
          id
          name
          position
          optionValues {
            id
            name
          }
        }
      }
    }
    pageInfo {
      hasNextPage
    }
  }
}`

const optionsCreateMutation = `
mutation productOptionsCreate($productId: ID!, $options: [OptionCreateInput!]!, $variantStrategy: ProductOptionCreateVariantStrategy) {
  productOptionsCreate(productId: $productId, options: $options, variantStrategy: $variantStrategy) {
    userErrors {
      field
      message
    }
  }
}`

const optionUpdateMutation = `
mutation productOptionUpdate($productId: ID!, $option: OptionUpdateInput!, $optionValuesToDelete: [ID!], $variantStrategy: ProductOptionUpdateVariantStrategy) {
  productOptionUpdate(productId: $productId, option: $option, optionValuesToDelete: $optionValuesToDelete, variantStrategy: $variantStrategy) {
    userErrors {
      field
      message
    }
  }
}`

const optionsDeleteMutation = `
mutation productOptionsDelete($productId: ID!, $options: [ID!]!) {
  productOptionsDelete(productId: $productId, options: $options) {
    deletedOptionsIds
    userErrors {
      field
      message
    }
  }
}`
